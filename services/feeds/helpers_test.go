package feeds

import (
	"fmt"
	"html"
	"path/filepath"
	"sale-alerts/models/entities"
	"sale-alerts/pkg/observer"
	"sale-alerts/repositories/feedsources"
	"sale-alerts/repositories/listings"
	"sale-alerts/utils/databases"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEntry struct {
	ID        string
	Title     string
	Content   string
	Link      string
	Published string
}

func newTestEntry(id string) testEntry {
	return testEntry{
		ID:    id,
		Title: fmt.Sprintf("[GPU] Listing %s $%d (free shipping)", id, len(id)*100),
		Content: `<table> <tr><td> &#32; submitted by &#32; <a href="https://www.reddit.com/user/seller"> /u/seller </a>` +
			` <br/> <span><a href="https://shop.example.com/` + id + `">[link]</a></span>` +
			` &#32; <span><a href="https://www.reddit.com/r/buildapcsales/comments/` + id + `/">[comments]</a></span> </td></tr></table>`,
		Link:      "https://www.reddit.com/r/buildapcsales/comments/" + id + "/listing/",
		Published: "2024-03-05T14:07:09+00:00",
	}
}

// buildAtomFeed renders entries newest-first, the way the listing feed serves them.
func buildAtomFeed(entries ...testEntry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom" xmlns:media="http://search.yahoo.com/mrss/">` + "\n")
	b.WriteString(`<category term="buildapcsales" label="r/buildapcsales"/>` + "\n")
	b.WriteString(`<updated>2024-03-05T14:10:00+00:00</updated>` + "\n")
	b.WriteString(`<id>/r/buildapcsales/new/.rss</id>` + "\n")
	b.WriteString(`<title>newest submissions : buildapcsales</title>` + "\n")

	for _, e := range entries {
		b.WriteString("<entry>\n")
		b.WriteString(`<author><name>/u/seller</name><uri>https://www.reddit.com/user/seller</uri></author>` + "\n")
		b.WriteString(`<content type="html">` + html.EscapeString(e.Content) + "</content>\n")
		b.WriteString("<id>" + e.ID + "</id>\n")
		if e.Link != "" {
			b.WriteString(`<link href="` + html.EscapeString(e.Link) + `" />` + "\n")
		}
		b.WriteString("<updated>" + e.Published + "</updated>\n")
		b.WriteString("<published>" + e.Published + "</published>\n")
		b.WriteString("<title>" + html.EscapeString(e.Title) + "</title>\n")
		b.WriteString("</entry>\n")
	}

	b.WriteString("</feed>\n")
	return b.String()
}

func entriesFor(ids ...string) []testEntry {
	entries := make([]testEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, newTestEntry(id))
	}
	return entries
}

type testStore struct {
	db          databases.SqlConnection
	listings    *listings.Impl
	feedSources *feedsources.Impl
}

func newTestStore(t *testing.T) testStore {
	t.Helper()

	db := databases.NewSqlite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, db.Run())
	t.Cleanup(db.Shutdown)
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Listing{}, &entities.FeedSource{}))

	return testStore{db: db, listings: listings.New(db), feedSources: feedsources.New(db)}
}

// seed commits ids to the ledger as if a previous cycle had seen them.
func (s testStore) seed(t *testing.T, ids ...string) {
	t.Helper()

	ledger, err := s.listings.Begin()
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, ledger.Append(entities.Listing{ID: id}))
	}
	require.NoError(t, ledger.Commit())
}

func (s testStore) count(t *testing.T) int64 {
	t.Helper()

	n, err := s.listings.Count()
	require.NoError(t, err)
	return n
}

type recordingObserver struct {
	mu     sync.Mutex
	events []observer.Event
}

func (o *recordingObserver) OnNotify(e observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) ids() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	ids := make([]string, 0, len(o.events))
	for _, e := range o.events {
		ids = append(ids, e.Listing.ID)
	}
	return ids
}

func listingIDs(list []entities.Listing) []string {
	ids := make([]string, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.ID)
	}
	return ids
}

func newListings(ids ...string) []entities.Listing {
	list := make([]entities.Listing, 0, len(ids))
	for _, id := range ids {
		list = append(list, entities.Listing{ID: id})
	}
	return list
}
