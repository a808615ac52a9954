package badgerstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/store"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func samplePaper() models.Paper {
	return models.Paper{
		ID:     "p1",
		Title:  "Deep Residual Learning",
		Status: models.StatusPublished,
		Tables: models.NewTableSet(models.Table{
			Key:         "t1",
			Title:       "Error rates",
			Columns:     map[string]models.Column{"top1": {Name: "top-1", Type: models.ColumnNumeric, Best: models.BestLowest}},
			ColumnOrder: []string{"top1"},
			Rows:        map[string]models.Row{"r50": {Name: "ResNet-50"}},
			RowOrder:    []string{"r50"},
			Values:      models.Values{"r50": {"top1": 20.74}},
		}),
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestPaperRoundTrip verifies a paper survives storage unchanged.
func TestPaperRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)

	paper := samplePaper()
	require.NoError(t, s.SavePaper(ctx, paper))

	got, err := s.GetPaper(ctx, "p1")
	require.NoError(t, err)
	if diff := cmp.Diff(paper, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Paper mismatch (-want +got):\n%s", diff)
	}
}

// TestPersistentReopen verifies data survives closing the database.
func TestPersistentReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	require.NoError(t, s.SavePaper(ctx, samplePaper()))
	require.NoError(t, s.Close())

	s2, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetPaper(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Deep Residual Learning", got.Title)
	assert.Equal(t, 20.74, got.Tables.Tables["t1"].Values["r50"]["top1"])
}

func TestPathRequired(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)

	_, err := s.GetPaper(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrPaperNotFound)

	_, err = s.GetReproduction(ctx, "p1", "missing")
	assert.ErrorIs(t, err, store.ErrReproductionNotFound)

	assert.ErrorIs(t, s.DeletePaper(ctx, "missing"), store.ErrPaperNotFound)
	assert.ErrorIs(t, s.DeleteReproduction(ctx, "p1", "missing"), store.ErrReproductionNotFound)
}

func TestInvalidID(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)

	assert.ErrorIs(t, s.SavePaper(ctx, models.Paper{}), ErrInvalidID)
	assert.ErrorIs(t, s.SaveReproduction(ctx, models.Reproduction{ID: "a/b", PaperID: "p1"}), ErrInvalidID)
}

// TestReproductionsFetchOrder verifies reproductions come back oldest first
// and only for the requested paper.
func TestReproductionsFetchOrder(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, r := range []models.Reproduction{
		{ID: "zz", PaperID: "p1", CreatedAt: base},
		{ID: "aa", PaperID: "p1", CreatedAt: base.Add(time.Minute)},
		{ID: "mm", PaperID: "p1", CreatedAt: base},
		{ID: "xx", PaperID: "p10", CreatedAt: base},
	} {
		require.NoError(t, s.SaveReproduction(ctx, r))
	}

	got, err := s.GetReproductionsForPaper(ctx, "p1")
	require.NoError(t, err)
	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"mm", "zz", "aa"}, ids)
}

func TestReproductionValuesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)

	r := models.Reproduction{
		ID:      "r1",
		PaperID: "p1",
		Title:   "Rerun",
		Tables:  models.TableValues{"t1": {"r50": {"top1": 21.0000000001}}},
	}
	require.NoError(t, s.SaveReproduction(ctx, r))

	got, err := s.GetReproduction(ctx, "p1", "r1")
	require.NoError(t, err)
	assert.Equal(t, r.Tables, got.Tables)
}

func TestDeletePaperCascades(t *testing.T) {
	ctx := context.Background()
	s := openInMemory(t)

	require.NoError(t, s.SavePaper(ctx, samplePaper()))
	require.NoError(t, s.SaveReproduction(ctx, models.Reproduction{ID: "r1", PaperID: "p1"}))
	require.NoError(t, s.SaveReproduction(ctx, models.Reproduction{ID: "r2", PaperID: "p1"}))
	require.NoError(t, s.SaveReproduction(ctx, models.Reproduction{ID: "r3", PaperID: "p2"}))

	require.NoError(t, s.DeletePaper(ctx, "p1"))

	got, err := s.GetReproductionsForPaper(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := s.GetReproductionsForPaper(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
