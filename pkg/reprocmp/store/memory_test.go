package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

func TestMemoryPaperRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	table := models.NewTable()
	table.Title = "T"
	paper := models.Paper{ID: "p1", Title: "Paper", Tables: models.NewTableSet(table)}
	require.NoError(t, m.SavePaper(ctx, paper))

	got, err := m.GetPaper(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, paper.Tables, got.Tables)

	// Mutating the returned copy leaves the store untouched.
	got.Tables.Tables[table.Key].Values[table.RowOrder[0]][table.ColumnOrder[0]] = "changed"
	again, err := m.GetPaper(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "", again.Tables.Tables[table.Key].Values[table.RowOrder[0]][table.ColumnOrder[0]])
}

func TestMemoryPaperNotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.GetPaper(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPaperNotFound)
	assert.ErrorIs(t, m.DeletePaper(context.Background(), "missing"), ErrPaperNotFound)
}

func TestMemoryReproductionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, r := range []models.Reproduction{
		{ID: "late", PaperID: "p", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b", PaperID: "p", CreatedAt: base},
		{ID: "a", PaperID: "p", CreatedAt: base},
		{ID: "other", PaperID: "q", CreatedAt: base},
	} {
		require.NoError(t, m.SaveReproduction(ctx, r))
	}

	got, err := m.GetReproductionsForPaper(ctx, "p")
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "b", "late"}, ids)

	require.NoError(t, m.DeleteReproduction(ctx, "p", "b"))
	_, err = m.GetReproduction(ctx, "p", "b")
	assert.ErrorIs(t, err, ErrReproductionNotFound)
}

func TestMemoryDeletePaperCascades(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SavePaper(ctx, models.Paper{ID: "p"}))
	require.NoError(t, m.SaveReproduction(ctx, models.Reproduction{ID: "r", PaperID: "p"}))

	require.NoError(t, m.DeletePaper(ctx, "p"))
	got, err := m.GetReproductionsForPaper(ctx, "p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemory().GetReproductionsForPaper(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}
