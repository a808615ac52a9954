package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/store"
)

// ErrInvalidID indicates an empty id or one containing the key separator.
var ErrInvalidID = errors.New("invalid document id")

const (
	paperPrefix = "paper/"
	reproPrefix = "repro/"
)

// Store implements store.Store on BadgerDB. It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Open opens a Store for cfg. The caller must Close it.
func Open(cfg Config) (*Store, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func paperKey(id string) []byte {
	return []byte(paperPrefix + id)
}

func reproKey(paperID, id string) []byte {
	return []byte(reproPrefix + paperID + "/" + id)
}

func reproPrefixFor(paperID string) []byte {
	return []byte(reproPrefix + paperID + "/")
}

func checkID(id string) error {
	if id == "" || strings.Contains(id, "/") {
		return fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return nil
}

func (s *Store) GetPaper(ctx context.Context, id string) (models.Paper, error) {
	if err := ctx.Err(); err != nil {
		return models.Paper{}, err
	}
	var p models.Paper
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, paperKey(id), &p)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.Paper{}, fmt.Errorf("paper %q: %w", id, store.ErrPaperNotFound)
	}
	if err != nil {
		return models.Paper{}, fmt.Errorf("get paper %q: %w", id, err)
	}
	return p, nil
}

func (s *Store) SavePaper(ctx context.Context, paper models.Paper) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkID(paper.ID); err != nil {
		return err
	}
	data, err := json.Marshal(paper)
	if err != nil {
		return fmt.Errorf("encode paper %q: %w", paper.ID, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(paperKey(paper.ID), data)
	}); err != nil {
		return fmt.Errorf("save paper %q: %w", paper.ID, err)
	}
	s.logger.Debug("paper saved", "paper_id", paper.ID, "tables", paper.Tables.Len())
	return nil
}

func (s *Store) DeletePaper(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	removed := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(paperKey(id)); err != nil {
			return err
		}
		keys := collectKeys(txn, reproPrefixFor(id))
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		removed = len(keys)
		return txn.Delete(paperKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("paper %q: %w", id, store.ErrPaperNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete paper %q: %w", id, err)
	}
	s.logger.Debug("paper deleted", "paper_id", id, "reproductions", removed)
	return nil
}

func (s *Store) GetReproductionsForPaper(ctx context.Context, paperID string) ([]models.Reproduction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Reproduction
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := reproPrefixFor(paperID)
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 64, Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r models.Reproduction
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reproductions of paper %q: %w", paperID, err)
	}
	store.SortReproductions(out)
	return out, nil
}

func (s *Store) GetReproduction(ctx context.Context, paperID, id string) (models.Reproduction, error) {
	if err := ctx.Err(); err != nil {
		return models.Reproduction{}, err
	}
	var r models.Reproduction
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, reproKey(paperID, id), &r)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.Reproduction{}, fmt.Errorf("reproduction %q of paper %q: %w", id, paperID, store.ErrReproductionNotFound)
	}
	if err != nil {
		return models.Reproduction{}, fmt.Errorf("get reproduction %q: %w", id, err)
	}
	return r, nil
}

func (s *Store) SaveReproduction(ctx context.Context, r models.Reproduction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkID(r.PaperID); err != nil {
		return err
	}
	if err := checkID(r.ID); err != nil {
		return err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode reproduction %q: %w", r.ID, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reproKey(r.PaperID, r.ID), data)
	}); err != nil {
		return fmt.Errorf("save reproduction %q: %w", r.ID, err)
	}
	s.logger.Debug("reproduction saved", "paper_id", r.PaperID, "reproduction_id", r.ID, "tables", len(r.Tables))
	return nil
}

func (s *Store) DeleteReproduction(ctx context.Context, paperID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(reproKey(paperID, id)); err != nil {
			return err
		}
		return txn.Delete(reproKey(paperID, id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("reproduction %q of paper %q: %w", id, paperID, store.ErrReproductionNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete reproduction %q: %w", id, err)
	}
	return nil
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func collectKeys(txn *badger.Txn, prefix []byte) [][]byte {
	it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
	defer it.Close()
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}
