package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/output"
)

type extractFlags struct {
	output      string
	asJSON      bool
	pretty      bool
	workers     int
	institution string
	canonical   bool
}

func newExtractCmd() *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "extract [file.xlsx...]",
		Short: "Extract allocations from one or more disclosure workbooks",
		Long: `Extract reads each workbook, picks the fund house from its file name
(or --institution) and prints the allocation. With --output ending in .xlsx
the results are written as one combined summary workbook.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), cmd.OutOrStdout(), args, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path, .xlsx for a summary workbook (default: stdout)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Files extracted in parallel (default from config)")
	cmd.Flags().StringVar(&f.institution, "institution", "", "Force a fund house instead of matching the file name")
	cmd.Flags().BoolVar(&f.canonical, "canonical", false, "Fold house-specific tag spellings onto shared names")
	return cmd
}

func runExtract(ctx context.Context, stdout io.Writer, paths []string, f extractFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := fundalloc.Options{
		Canonical: f.canonical || cfg.Extract.Canonical,
		Logger:    logger,
	}
	if f.institution != "" {
		id, err := institutions.Select(f.institution)
		if err != nil {
			return err
		}
		opts.Institution = id
	}

	// Unreadable paths fail like any other file and keep their position.
	files := make([]models.NamedResult, len(paths))
	inputs := make([]fundalloc.Input, 0, len(paths))
	slots := make([]int, 0, len(paths))
	for i, p := range paths {
		files[i].FileName = filepath.Base(p)
		data, err := os.ReadFile(p)
		if err != nil {
			files[i].Error = fmt.Sprintf("failed to read %s: %v", p, err)
			continue
		}
		inputs = append(inputs, fundalloc.Input{Name: files[i].FileName, Data: data})
		slots = append(slots, i)
	}

	workers := f.workers
	if workers <= 0 {
		workers = cfg.Extract.Workers
	}
	for j, nr := range fundalloc.ExtractBatch(ctx, inputs, workers, opts) {
		files[slots[j]] = nr
	}
	book := &models.SummaryBook{BookName: cfg.Extract.BookName, Files: files}

	for _, failed := range book.Failed() {
		logger.Error("extraction failed",
			slog.String("file", failed.FileName),
			slog.String("error", failed.Error))
	}
	if len(book.Succeeded()) == 0 {
		return fmt.Errorf("no file could be extracted (%d failed)", len(book.Failed()))
	}

	data, err := render(book, f)
	if err != nil {
		return err
	}
	if f.output == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote output",
		slog.String("path", f.output),
		slog.Int("files", len(book.Succeeded())))
	return nil
}

func render(book *models.SummaryBook, f extractFlags) ([]byte, error) {
	var buf bytes.Buffer
	switch {
	case strings.EqualFold(filepath.Ext(f.output), ".xlsx"):
		if err := output.WriteWorkbook(&buf, book.Files); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	case f.asJSON || f.pretty || strings.EqualFold(filepath.Ext(f.output), ".json"):
		data, err := output.BookToJSON(book, f.pretty)
		if err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		for _, nr := range book.Succeeded() {
			fmt.Fprintf(&buf, "== %s (%s)\n", nr.FileName, nr.Result.Institution)
			if err := output.WriteTable(&buf, nr.Result); err != nil {
				return nil, err
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}
