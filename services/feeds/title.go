package feeds

import (
	"regexp"
	"sale-alerts/models/constants"
	"strings"
)

// Titles follow "[TYPE] title text $PRICE rest...". Every part is optional.
var (
	typePattern  = regexp.MustCompile(`\[([^\]]*)\]`)
	pricePattern = regexp.MustCompile(`\$\S*`)
)

type TitleFields struct {
	Type  string
	Title string
	Price string
}

func ParseTitle(raw string) TitleFields {
	rest := afterType(raw)

	return TitleFields{
		Type:  extractType(raw),
		Title: extractTitle(rest),
		Price: extractPrice(rest),
	}
}

func extractType(raw string) string {
	match := typePattern.FindStringSubmatch(raw)
	if match == nil || match[1] == "" {
		return constants.UnknownType
	}

	return match[1]
}

// afterType drops everything up to the first "]", so a "$" in the type tag is never a price.
func afterType(raw string) string {
	if _, after, found := strings.Cut(raw, "]"); found {
		return after
	}

	return raw
}

// extractTitle keeps what sits before the first "$", or everything when there is none.
func extractTitle(rest string) string {
	if before, _, found := strings.Cut(rest, "$"); found {
		rest = before
	}

	return strings.TrimSpace(rest) + " "
}

func extractPrice(rest string) string {
	price := pricePattern.FindString(rest)
	if price == "" {
		return constants.UnknownPrice
	}

	return price
}
