// Package store defines the persistence collaborators for papers and
// reproductions, and an in-memory implementation.
package store

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// ErrPaperNotFound indicates the requested paper does not exist.
var ErrPaperNotFound = errors.New("paper not found")

// ErrReproductionNotFound indicates the requested reproduction does not exist.
var ErrReproductionNotFound = errors.New("reproduction not found")

// PaperRepository reads and writes papers with their table definitions.
type PaperRepository interface {
	GetPaper(ctx context.Context, id string) (models.Paper, error)
	SavePaper(ctx context.Context, paper models.Paper) error
	// DeletePaper removes the paper and all its reproductions.
	DeletePaper(ctx context.Context, id string) error
}

// ReproductionRepository reads and writes reproductions with their
// value-fills.
type ReproductionRepository interface {
	// GetReproductionsForPaper returns the paper's reproductions in fetch
	// order: oldest CreatedAt first, then by ID.
	GetReproductionsForPaper(ctx context.Context, paperID string) ([]models.Reproduction, error)
	GetReproduction(ctx context.Context, paperID, id string) (models.Reproduction, error)
	SaveReproduction(ctx context.Context, r models.Reproduction) error
	DeleteReproduction(ctx context.Context, paperID, id string) error
}

// Store is both repositories.
type Store interface {
	PaperRepository
	ReproductionRepository
}

// SortReproductions puts reproductions in fetch order.
func SortReproductions(reprods []models.Reproduction) {
	slices.SortStableFunc(reprods, func(a, b models.Reproduction) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
