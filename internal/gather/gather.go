// Package gather collects test results written by an earlier CI step and
// turns them into a verdict.GatherOutcome.
package gather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/testgate/internal/errors"
	"github.com/AndreyAkinshin/testgate/internal/testrun"
	"github.com/AndreyAkinshin/testgate/internal/verdict"
)

// MaxWorkers caps the number of files decoded in parallel.
const MaxWorkers = 16

// Gather expands patterns under root, loads every matched results file and
// returns the concatenated results. Any failure is captured in the outcome.
func Gather(ctx context.Context, root string, patterns []string) verdict.GatherOutcome {
	results, err := Load(ctx, root, patterns)
	if err != nil {
		return verdict.GatherFailed(err)
	}
	return verdict.Gathered(results)
}

// Load is Gather with a plain error return.
func Load(ctx context.Context, root string, patterns []string) ([]testrun.Result, error) {
	paths, err := Expand(root, patterns)
	if err != nil {
		return nil, err
	}

	files := make([][]testrun.Result, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results, err := LoadFile(path)
			if err != nil {
				return err
			}
			files[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []testrun.Result
	for _, results := range files {
		all = append(all, results...)
	}
	return all, nil
}

// Expand resolves doublestar patterns relative to root into a sorted,
// de-duplicated list of file paths. Absolute patterns are matched as-is.
// It is an error for the patterns to match nothing.
func Expand(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no result paths configured")
	}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, errors.Newf("invalid result path pattern %q", pattern)
		}

		base, rel := root, filepath.ToSlash(pattern)
		if filepath.IsAbs(pattern) {
			base, rel = doublestar.SplitPattern(filepath.ToSlash(pattern))
		}

		matches, err := doublestar.Glob(os.DirFS(base), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(base, filepath.FromSlash(m))
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}

	if len(paths) == 0 {
		return nil, errors.Newf("no test result files match %s", strings.Join(patterns, ", "))
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadFile reads a single results file. The format is chosen by extension:
// .yaml and .yml are YAML, everything else is JSON.
func LoadFile(path string) ([]testrun.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileError(errors.KindRuntime, path, "cannot read results", err)
	}

	var file testrun.File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, errors.FileError(errors.KindRuntime, path, "invalid YAML", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, errors.FileError(errors.KindRuntime, path, "invalid JSON", err)
		}
	}

	for i, r := range file.Tests {
		if strings.TrimSpace(r.Name) == "" {
			return nil, errors.FileError(errors.KindRuntime, path, fmt.Sprintf("test #%d has no name", i+1), nil)
		}
		if r.Status == testrun.StatusUnknown {
			return nil, errors.FileError(errors.KindRuntime, path, fmt.Sprintf("test %q has no status", r.Name), nil)
		}
	}

	return file.Tests, nil
}

func workerCount(files int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	if files > 0 && workers > files {
		workers = files
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
