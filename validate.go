package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/gridnav/game/loader"
)

var errInvalidMaps = errors.New("some maps have errors")

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check map files and print a report",
		UsageText: "gridnav validate [--pattern GLOB] PATH...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "file pattern used when PATH is a directory",
				Value: "*.txt",
			},
		},
		Action: validateAction,
	}
}

// validateAction inspects every path, printing a concise report and failing
// if any map is invalid.
func validateAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("validate: at least one map file or directory is required")
	}

	var reports []loader.Report
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		if !info.IsDir() {
			reports = append(reports, loader.Inspect(path))
			continue
		}
		dirReports, err := loader.InspectDir(path, cmd.String("pattern"))
		if err != nil {
			return err
		}
		reports = append(reports, dirReports...)
	}

	allValid, err := writeReports(cmd.Root().Writer, reports)
	if err != nil {
		return fmt.Errorf("validate: failed to write report: %w", err)
	}
	if !allValid {
		return errInvalidMaps
	}
	return nil
}

// reportWriter keeps the first write error and skips later writes
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

// writeReports prints each report and returns whether all were valid,
// along with the first write error
func writeReports(w io.Writer, reports []loader.Report) (bool, error) {
	out := &reportWriter{w: w}
	allValid := true
	for _, report := range reports {
		out.printf("\n%s %s\n", strings.Repeat("=", 20), report.File)

		if report.Valid {
			out.printf("✅ VALID\n")
			for _, note := range report.Notes {
				out.printf("  %s\n", note)
			}
			continue
		}

		out.printf("❌ INVALID\n")
		allValid = false
		for _, err := range report.Errors {
			out.printf("  ❌ %s\n", err)
		}
	}

	out.printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		out.printf("✅ All %d maps are valid!\n", len(reports))
	} else {
		out.printf("❌ Some maps have errors\n")
	}
	return allValid, out.err
}
