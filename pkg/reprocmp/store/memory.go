package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// Memory is an in-memory Store. Documents are copied on the way in and out,
// so callers never share maps with the store.
type Memory struct {
	mu      sync.RWMutex
	papers  map[string]models.Paper
	reprods map[string]map[string]models.Reproduction
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		papers:  make(map[string]models.Paper),
		reprods: make(map[string]map[string]models.Reproduction),
	}
}

func (m *Memory) GetPaper(ctx context.Context, id string) (models.Paper, error) {
	if err := ctx.Err(); err != nil {
		return models.Paper{}, err
	}
	m.mu.RLock()
	p, ok := m.papers[id]
	m.mu.RUnlock()
	if !ok {
		return models.Paper{}, fmt.Errorf("paper %q: %w", id, ErrPaperNotFound)
	}
	return p.Clone()
}

func (m *Memory) SavePaper(ctx context.Context, paper models.Paper) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := paper.Clone()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.papers[p.ID] = p
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeletePaper(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.papers[id]; !ok {
		return fmt.Errorf("paper %q: %w", id, ErrPaperNotFound)
	}
	delete(m.papers, id)
	delete(m.reprods, id)
	return nil
}

func (m *Memory) GetReproductionsForPaper(ctx context.Context, paperID string) ([]models.Reproduction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Reproduction, 0, len(m.reprods[paperID]))
	for _, r := range m.reprods[paperID] {
		c, err := r.Clone()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	SortReproductions(out)
	return out, nil
}

func (m *Memory) GetReproduction(ctx context.Context, paperID, id string) (models.Reproduction, error) {
	if err := ctx.Err(); err != nil {
		return models.Reproduction{}, err
	}
	m.mu.RLock()
	r, ok := m.reprods[paperID][id]
	m.mu.RUnlock()
	if !ok {
		return models.Reproduction{}, fmt.Errorf("reproduction %q of paper %q: %w", id, paperID, ErrReproductionNotFound)
	}
	return r.Clone()
}

func (m *Memory) SaveReproduction(ctx context.Context, r models.Reproduction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := r.Clone()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reprods[c.PaperID] == nil {
		m.reprods[c.PaperID] = make(map[string]models.Reproduction)
	}
	m.reprods[c.PaperID][c.ID] = c
	return nil
}

func (m *Memory) DeleteReproduction(ctx context.Context, paperID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reprods[paperID][id]; !ok {
		return fmt.Errorf("reproduction %q of paper %q: %w", id, paperID, ErrReproductionNotFound)
	}
	delete(m.reprods[paperID], id)
	return nil
}
