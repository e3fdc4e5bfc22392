// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check validates artifact definition files against the definition
// grammar without touching the knowledge base.
// Implements: prd001-definitions (R5).
package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/artifact-kb/pkg/artifacts"
)

// definitionsGlob selects definition files when a directory is checked.
const definitionsGlob = "*.yaml"

// Summary holds per-file counts from a validation run.
type Summary struct {
	Valid   int
	Invalid int
}

// Total returns the number of definition files examined.
func (r Summary) Total() int {
	return r.Valid + r.Invalid
}

// HasFailures reports whether any file failed validation.
func (r Summary) HasFailures() bool {
	return r.Invalid > 0
}

// CheckFile validates a single definitions file, returning the number of
// definitions it contains. Grammar violations surface as *artifacts.FormatError.
func CheckFile(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	dec := artifacts.NewDecoder(f)
	for {
		_, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count++
	}
}

// CheckSource validates the definitions file or directory at path, printing
// one status line per file to w. Directory matching is top level only; a
// failing file never stops the remaining files.
func CheckSource(path string, w io.Writer) (Summary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Summary{}, fmt.Errorf("reading definitions path: %w", err)
	}

	filenames := []string{path}
	if info.IsDir() {
		filenames, err = filepath.Glob(filepath.Join(path, definitionsGlob))
		if err != nil {
			return Summary{}, fmt.Errorf("scanning definitions directory: %w", err)
		}
	}

	var summary Summary
	for _, filename := range filenames {
		count, err := CheckFile(filename)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", filename, err)
			summary.Invalid++
			continue
		}
		fmt.Fprintf(w, "ok: %s (%d definitions)\n", filename, count)
		summary.Valid++
	}

	fmt.Fprintf(w, "\nvalid: %d, invalid: %d\n", summary.Valid, summary.Invalid)
	return summary, nil
}
