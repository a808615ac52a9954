package reprocmp

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/aggregate"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/contrib"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/render"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/store"
)

// Service submits papers and reproductions and composes comparisons.
type Service struct {
	papers  store.PaperRepository
	reprods store.ReproductionRepository
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service over the given repositories.
func NewService(papers store.PaperRepository, reprods store.ReproductionRepository, opts ...Option) *Service {
	s := &Service{
		papers:  papers,
		reprods: reprods,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitPaper validates a paper, commits its tables and stores it. A paper
// without an id is new: it gets an id, a creation time and pending status.
func (s *Service) SubmitPaper(ctx context.Context, paper models.Paper) (models.Paper, error) {
	if paper.ID == "" {
		paper.ID = models.NewKey()
		paper.CreatedAt = s.now().UTC()
	}
	if paper.Status == "" {
		paper.Status = models.StatusPending
	}

	if err := contrib.ValidatePaper(paper); err != nil {
		return models.Paper{}, NewSubmitError("paper", paper.ID, err)
	}
	tables, err := contrib.CoerceTables(paper.Tables)
	if err != nil {
		return models.Paper{}, NewSubmitError("paper", paper.ID, err)
	}
	paper.Tables = tables

	if err := s.papers.SavePaper(ctx, paper); err != nil {
		return models.Paper{}, NewSubmitError("paper", paper.ID, err)
	}
	s.logger.Info("paper submitted", "paper_id", paper.ID, "tables", paper.Tables.Len())
	return paper, nil
}

// SubmitReproduction validates a reproduction, commits its value-fill against
// the paper's current tables and stores it.
func (s *Service) SubmitReproduction(ctx context.Context, r models.Reproduction) (models.Reproduction, error) {
	if r.ID == "" {
		r.ID = models.NewKey()
		r.CreatedAt = s.now().UTC()
	}

	if err := contrib.ValidateReproduction(r); err != nil {
		return models.Reproduction{}, NewSubmitError("reproduction", r.ID, err)
	}
	paper, err := s.papers.GetPaper(ctx, r.PaperID)
	if err != nil {
		return models.Reproduction{}, NewSubmitError("reproduction", r.ID, err)
	}
	tables, err := contrib.CoerceTableValues(paper.Tables, r.Tables)
	if err != nil {
		return models.Reproduction{}, NewSubmitError("reproduction", r.ID, err)
	}
	r.Tables = tables

	if err := s.reprods.SaveReproduction(ctx, r); err != nil {
		return models.Reproduction{}, NewSubmitError("reproduction", r.ID, err)
	}
	s.logger.Info("reproduction submitted", "paper_id", r.PaperID, "reproduction_id", r.ID, "tables", len(r.Tables))
	return r, nil
}

// Comparison is a paper, its reproductions in fetch order and the winning
// cells.
type Comparison struct {
	Paper         models.Paper
	Reproductions []models.Reproduction
	Best          aggregate.BestCells
}

// Views projects the comparison into display grids.
func (c *Comparison) Views() []render.TableView {
	return render.Project(c.Paper, c.Reproductions, c.Best)
}

// Report is the serializable form of a Comparison.
type Report struct {
	PaperID       string                         `json:"paper_id"`
	Title         string                         `json:"title"`
	Reproductions []string                       `json:"reproductions"`
	Best          []aggregate.CellContributorKey `json:"best"`
	Tables        []render.TableView             `json:"tables"`
}

// Report returns the serializable form of c.
func (c *Comparison) Report() Report {
	ids := make([]string, 0, len(c.Reproductions))
	for _, r := range c.Reproductions {
		ids = append(ids, r.ID)
	}
	return Report{
		PaperID:       c.Paper.ID,
		Title:         c.Paper.Title,
		Reproductions: ids,
		Best:          c.Best.Keys(),
		Tables:        c.Views(),
	}
}

// Compare loads a paper and all of its reproductions, then runs the
// best-value aggregation. The aggregation only starts once both loads have
// completed.
func (s *Service) Compare(ctx context.Context, paperID string) (*Comparison, error) {
	var (
		paper   models.Paper
		reprods []models.Reproduction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		paper, err = s.papers.GetPaper(gctx, paperID)
		return err
	})
	g.Go(func() error {
		var err error
		reprods, err = s.reprods.GetReproductionsForPaper(gctx, paperID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := aggregate.ForPaper(paper, reprods)
	s.logger.Debug("comparison composed", "paper_id", paperID, "reproductions", len(reprods), "best_cells", len(best))
	return &Comparison{
		Paper:         paper,
		Reproductions: reprods,
		Best:          best,
	}, nil
}

// ReproductionTables returns every table filled in by the paper's
// reproductions, folded in fetch order with the last fill of a table winning.
func (s *Service) ReproductionTables(ctx context.Context, paperID string) (models.TableValues, error) {
	reprods, err := s.reprods.GetReproductionsForPaper(ctx, paperID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string)
	for _, r := range reprods {
		for key := range r.Tables {
			if prev, ok := seen[key]; ok {
				s.logger.Warn("table filled by several reproductions, keeping the later one",
					"paper_id", paperID, "table", key, "dropped", prev, "kept", r.ID)
			}
			seen[key] = r.ID
		}
	}
	return contrib.ReproductionTables(reprods), nil
}
