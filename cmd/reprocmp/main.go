// Package main provides the CLI entry point for reprocmp.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/output"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/store"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/store/badgerstore"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	dbPath     string
	logLevel   string
	pretty     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "reprocmp",
		Short: "Compare a paper's results with its reproductions",
		Long: `reprocmp stores papers with their result tables and reproductions
with the values they obtained, and reports which contributor holds the
best value of every numeric cell.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "reprocmp.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database directory (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newPaperCmd(opts),
		newReproCmd(opts),
		newCompareCmd(opts),
		newTableCmd(opts),
	)
	return rootCmd
}

// env is what a command needs once flags and config are resolved.
type env struct {
	cfg     reprocmp.Config
	logger  *slog.Logger
	store   store.Store
	service *reprocmp.Service
	close   func() error
}

func (o *globalOptions) config() (reprocmp.Config, error) {
	cfg, err := reprocmp.LoadConfig(o.configPath)
	if err != nil {
		return reprocmp.Config{}, err
	}
	if o.dbPath != "" {
		cfg.Store.Path = o.dbPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.pretty {
		cfg.Output.Pretty = true
	}
	if err := cfg.Validate(); err != nil {
		return reprocmp.Config{}, err
	}
	return cfg, nil
}

func (o *globalOptions) open(errOut io.Writer) (*env, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logging.NewLogger(errOut)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, close: func() error { return nil }}
	switch cfg.Store.Driver {
	case reprocmp.DriverMemory:
		e.store = store.NewMemory()
	default:
		db, err := badgerstore.Open(badgerstore.Config{
			Path:       cfg.Store.Path,
			InMemory:   cfg.Store.InMemory,
			SyncWrites: cfg.Store.ShouldSyncWrites(),
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = db
		e.close = db.Close
	}
	e.service = reprocmp.NewService(e.store, e.store, reprocmp.WithLogger(logger))
	return e, nil
}

// withEnv runs fn against an opened environment and closes it afterwards.
func withEnv(cmd *cobra.Command, opts *globalOptions, fn func(ctx context.Context, e *env) error) (err error) {
	e, err := opts.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()
	return fn(cmd.Context(), e)
}

// readJSON decodes the document at path into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, reprocmp.ErrFileNotFound)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// emit writes v as JSON to path, or to w when path is empty.
func emit(w io.Writer, path string, v any, pretty bool) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if path != "" {
		if err := os.WriteFile(path, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
