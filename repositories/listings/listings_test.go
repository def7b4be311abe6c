package listings

import (
	"path/filepath"
	"sale-alerts/models/entities"
	"sale-alerts/utils/databases"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) *Impl {
	t.Helper()

	db := databases.NewSqlite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, db.Run())
	t.Cleanup(db.Shutdown)
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Listing{}))

	return New(db)
}

func newListing(id string) entities.Listing {
	return entities.Listing{
		ID:          id,
		Title:       "Some GPU ",
		Price:       "$300",
		Type:        "GPU",
		URL:         "https://shop.example.com/" + id,
		PublishedAt: time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC),
		RedditLink:  "https://www.reddit.com/r/buildapcsales/comments/" + id,
	}
}

func count(t *testing.T, repo *Impl) int64 {
	t.Helper()

	n, err := repo.Count()
	require.NoError(t, err)
	return n
}

func TestLedgerAppendIsInvisibleUntilCommit(t *testing.T) {
	repo := newTestRepository(t)

	ledger, err := repo.Begin()
	require.NoError(t, err)

	require.NoError(t, ledger.Append(newListing("t3_a")))

	found, err := ledger.Contains("t3_a")
	require.NoError(t, err)
	assert.True(t, found, "append must be visible inside its own transaction")

	require.NoError(t, ledger.Commit())
	assert.Equal(t, int64(1), count(t, repo))

	stored, err := repo.FindByID("t3_a")
	require.NoError(t, err)
	assert.Equal(t, "GPU", stored.Type)
	assert.Equal(t, "$300", stored.Price)
	assert.Equal(t, "Some GPU ", stored.Title)
	assert.Empty(t, stored.RedditLink)
}

func TestLedgerRollbackDiscardsAppends(t *testing.T) {
	repo := newTestRepository(t)

	ledger, err := repo.Begin()
	require.NoError(t, err)
	require.NoError(t, ledger.Append(newListing("t3_a")))
	require.NoError(t, ledger.Append(newListing("t3_b")))
	require.NoError(t, ledger.Rollback())

	assert.Equal(t, int64(0), count(t, repo))

	_, err = repo.FindByID("t3_a")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLedgerAppendDuplicate(t *testing.T) {
	repo := newTestRepository(t)

	ledger, err := repo.Begin()
	require.NoError(t, err)
	require.NoError(t, ledger.Append(newListing("t3_a")))
	require.NoError(t, ledger.Commit())

	ledger, err = repo.Begin()
	require.NoError(t, err)
	defer ledger.Rollback()

	err = ledger.Append(newListing("t3_a"))
	assert.ErrorIs(t, err, ErrDuplicateListing)
}

func TestLedgerContainsUnknown(t *testing.T) {
	repo := newTestRepository(t)

	ledger, err := repo.Begin()
	require.NoError(t, err)
	defer ledger.Rollback()

	found, err := ledger.Contains("t3_missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLedgerCommitThenRollbackIsNoop(t *testing.T) {
	repo := newTestRepository(t)

	ledger, err := repo.Begin()
	require.NoError(t, err)
	require.NoError(t, ledger.Append(newListing("t3_a")))
	require.NoError(t, ledger.Commit())
	require.NoError(t, ledger.Rollback())

	assert.Equal(t, int64(1), count(t, repo))
}

func TestCountReportsDatabaseErrors(t *testing.T) {
	repo := newTestRepository(t)
	repo.db.Shutdown()

	n, err := repo.Count()
	assert.Error(t, err)
	assert.Zero(t, n)
}
