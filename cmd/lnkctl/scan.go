package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/lnkkit/internal/logger"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

var (
	scanWorkers int
	scanStrict  bool
)

func init() {
	cmd := newScanCmd()
	cmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "Number of concurrent decoders (default: number of CPUs)")
	cmd.Flags().BoolVar(&scanStrict, "strict", false, "Exit non-zero if any link fails to decode")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Decode every .lnk file under a directory",
		Long: `The scan command walks a directory tree, decodes every file with a .lnk
extension in parallel, and prints each file with its target path or the
decode error. Results are printed in walk order.

Example:
  lnkctl scan "C:\Users\alice\AppData\Roaming\Microsoft\Windows\Recent"
  lnkctl scan ./evidence --workers 8 --strict --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), args)
		},
	}
	return cmd
}

type scanResult struct {
	path   string
	target string
	err    error
}

// findLinks returns the .lnk files under root in lexical walk order.
func findLinks(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".lnk") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// scanLinks decodes paths with up to workers goroutines. Decode failures
// are recorded per file; only cancellation aborts the scan.
func scanLinks(ctx context.Context, paths []string, workers int) ([]scanResult, error) {
	opts, err := decodeOptions()
	if err != nil {
		return nil, err
	}
	results := make([]scanResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := scanResult{path: path}
			link, err := lnk.DecodeFile(path, opts...)
			if err != nil {
				logger.L.Debug("decode failed", "path", path, "error", err)
				res.err = err
			} else {
				res.target = link.TargetPath()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScan(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	root := args[0]
	workers := settings.Scan.Workers

	paths, err := findLinks(root)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}
	printVerbose("Found %d link files under %s\n", len(paths), root)

	results, err := scanLinks(ctx, paths, workers)
	if err != nil {
		return err
	}

	failed := 0
	reports := make([]report, 0, len(results))
	for _, res := range results {
		r := report{}.add("File", res.path)
		if res.err != nil {
			failed++
			r = r.add("Error", res.err.Error())
		} else {
			r = r.add("TargetPath", res.target)
		}
		reports = append(reports, r)
	}
	logger.L.Info("scan finished", "root", root, "files", len(results), "failed", failed, "workers", workers)

	if !quiet {
		if settings.Output.Format == "text" {
			for _, res := range results {
				if res.err != nil {
					printInfo("%s: ERROR %v\n", res.path, res.err)
				} else {
					printInfo("%s -> %s\n", res.path, res.target)
				}
			}
			printInfo("\n%d files, %d failed\n", len(results), failed)
		} else if err := renderMany(out, reports, settings.Output.Format); err != nil {
			return err
		}
	}

	if scanStrict && failed > 0 {
		return fmt.Errorf("%d of %d link files failed to decode", failed, len(results))
	}
	return nil
}
