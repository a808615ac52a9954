package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/xlsx"
)

func newPaperCmd(opts *globalOptions) *cobra.Command {
	paperCmd := &cobra.Command{
		Use:   "paper",
		Short: "Submit and inspect papers",
	}

	paperCmd.AddCommand(&cobra.Command{
		Use:   "submit [paper.json]",
		Short: "Validate, coerce and store a paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paper models.Paper
			if err := readJSON(args[0], &paper); err != nil {
				return err
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				stored, err := e.service.SubmitPaper(ctx, paper)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), stored.ID)
				return err
			})
		},
	})

	paperCmd.AddCommand(&cobra.Command{
		Use:   "show [paperID]",
		Short: "Print a stored paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				paper, err := e.store.GetPaper(ctx, args[0])
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), "", paper, e.cfg.Output.Pretty)
			})
		},
	})

	return paperCmd
}

func newReproCmd(opts *globalOptions) *cobra.Command {
	reproCmd := &cobra.Command{
		Use:   "repro",
		Short: "Submit reproductions",
	}

	reproCmd.AddCommand(&cobra.Command{
		Use:   "submit [repro.json]",
		Short: "Validate, coerce and store a reproduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r models.Reproduction
			if err := readJSON(args[0], &r); err != nil {
				return err
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				stored, err := e.service.SubmitReproduction(ctx, r)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), stored.ID)
				return err
			})
		},
	})

	return reproCmd
}

func newCompareCmd(opts *globalOptions) *cobra.Command {
	var outputPath, xlsxPath string

	compareCmd := &cobra.Command{
		Use:   "compare [paperID]",
		Short: "Report the best value of every numeric cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				cmp, err := e.service.Compare(ctx, args[0])
				if err != nil {
					return err
				}
				if xlsxPath != "" {
					if err := xlsx.Export(xlsxPath, cmp.Views()); err != nil {
						return fmt.Errorf("failed to write workbook: %w", err)
					}
					e.logger.Info("workbook written", "path", xlsxPath)
					if outputPath == "" {
						return nil
					}
				}
				return emit(cmd.OutOrStdout(), outputPath, cmp.Report(), e.cfg.Output.Pretty)
			})
		},
	}

	compareCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	compareCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the comparison as an .xlsx workbook")
	return compareCmd
}

func newTableCmd(opts *globalOptions) *cobra.Command {
	var sheet, rangeRef string

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Work with table definitions",
	}

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Read a table definition from a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("%s: %w", inputPath, reprocmp.ErrFileNotFound)
			}
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			table, err := xlsx.ImportTable(inputPath, sheet, rangeRef)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return emit(cmd.OutOrStdout(), "", table, cfg.Output.Pretty)
		},
	}
	importCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	importCmd.Flags().StringVar(&rangeRef, "range", "", "Cell range such as A1:D9 (default: data bounds)")

	tableCmd.AddCommand(importCmd)
	return tableCmd
}
