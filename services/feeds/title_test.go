package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want TitleFields
	}{
		{
			raw:  "[GPU] MSI RTX 4070 Ventus $549.99 ($599 - $50 coupon)",
			want: TitleFields{Type: "GPU", Title: "MSI RTX 4070 Ventus ", Price: "$549.99"},
		},
		{
			raw:  "[Monitor]LG 27GP850-B $299",
			want: TitleFields{Type: "Monitor", Title: "LG 27GP850-B ", Price: "$299"},
		},
		{
			raw:  "[SSD] Samsung 990 Pro 2TB",
			want: TitleFields{Type: "SSD", Title: "Samsung 990 Pro 2TB ", Price: "$???"},
		},
		{
			raw:  "Samsung 990 Pro 2TB $149",
			want: TitleFields{Type: "UNKNOWN", Title: "Samsung 990 Pro 2TB ", Price: "$149"},
		},
		{
			raw:  "No markers at all",
			want: TitleFields{Type: "UNKNOWN", Title: "No markers at all ", Price: "$???"},
		},
		{
			raw:  "[] Empty type $10",
			want: TitleFields{Type: "UNKNOWN", Title: "Empty type ", Price: "$10"},
		},
		{
			raw:  "[CPU Ryzen 7 7800X3D $369",
			want: TitleFields{Type: "UNKNOWN", Title: "[CPU Ryzen 7 7800X3D ", Price: "$369"},
		},
		{
			raw:  "[RAM] Kit [2x16GB] $89",
			want: TitleFields{Type: "RAM", Title: "Kit [2x16GB] ", Price: "$89"},
		},
		{
			raw:  "[$100 Off] RTX 4070 $549",
			want: TitleFields{Type: "$100 Off", Title: "RTX 4070 ", Price: "$549"},
		},
		{
			raw:  "$5 [GPU] foo",
			want: TitleFields{Type: "GPU", Title: "foo ", Price: "$???"},
		},
		{
			raw:  "",
			want: TitleFields{Type: "UNKNOWN", Title: " ", Price: "$???"},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTitle(tt.raw), "ParseTitle(%q)", tt.raw)
	}
}
