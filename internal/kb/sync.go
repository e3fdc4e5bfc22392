// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kb synchronizes the artifacts-kb content repository with a corpus
// of artifact definitions: definitions without a knowledge-base reference
// URL are flagged, and stub articles are generated for the Windows platform
// family.
// Implements: prd002-kb-sync (R1-R5).
package kb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/artifact-kb/pkg/artifacts"
	"github.com/pdiddy/artifact-kb/pkg/types"
)

const (
	// kbURLPrefix marks a reference URL as hosted in the knowledge base
	// content repository. A definition carrying at least one such URL is
	// documented; no network check backs this up.
	kbURLPrefix = "https://github.com/ForensicArtifacts/artifacts-kb/"

	// definitionsGlob selects definition files when a directory is
	// processed. Matching is top level only, never recursive.
	definitionsGlob = "*.yaml"
)

// Synchronizer classifies artifact definitions against the knowledge base
// and generates stub articles for undocumented Windows artifacts. It is
// single-threaded; two concurrent runs against the same knowledge base race
// on the existence check and are not supported.
type Synchronizer struct {
	kbPath string
	logger *zap.Logger
}

// NewSynchronizer returns a Synchronizer for the knowledge base checkout in
// cfg. A nil logger disables diagnostics.
func NewSynchronizer(cfg types.SyncConfig, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{
		kbPath: cfg.KBPath,
		logger: logger,
	}
}

// SyncSummary holds per-file counts from a synchronization run.
type SyncSummary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of definition files examined.
func (r SyncSummary) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any definition file failed processing.
func (r SyncSummary) HasFailures() bool {
	return r.Failed > 0
}

// ProcessSource processes the definitions file or directory at path,
// printing per-file progress to w. Directories are scanned for *.yaml
// files at the top level; each file is processed independently, so one
// failure never stops the remaining files. A directory with no matching
// files yields an empty, successful summary.
func (s *Synchronizer) ProcessSource(path string, w io.Writer) SyncSummary {
	var summary SyncSummary

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn("unable to read definitions path",
			zap.String("path", path), zap.Error(err))
		summary.Failed++
		return summary
	}

	filenames := []string{path}
	if info.IsDir() {
		filenames, err = filepath.Glob(filepath.Join(path, definitionsGlob))
		if err != nil {
			s.logger.Warn("unable to scan definitions directory",
				zap.String("path", path), zap.Error(err))
			summary.Failed++
			return summary
		}
	}

	for _, filename := range filenames {
		fmt.Fprintf(w, "Processing definitions in: %s\n", filename)
		if s.ProcessFile(filename) {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	fmt.Fprintf(w, "\nprocessed: %d file(s), failed: %d\n", summary.Total(), summary.Failed)
	return summary
}

// ProcessFile processes the artifact definitions in filename, attempting
// stub generation for every definition without a knowledge-base URL. It
// reports false when the file cannot be read or parsed, or when a supported
// definition remains undocumented at the end of the run: a missing
// knowledge-base path fails the file, while unsupported platform families
// and already-existing articles only log a note. A render or write error
// fails the file and abandons the definitions after it. Definitions decoded
// before a format error still get their articles.
func (s *Synchronizer) ProcessFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		s.logger.Warn("unable to process file",
			zap.String("file", filename), zap.Error(err))
		return false
	}
	defer f.Close()

	result := true
	dec := artifacts.NewDecoder(f)
	for {
		def, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.logger.Warn("unable to process file",
				zap.String("file", filename), zap.Error(err))
			result = false
			break
		}

		ok, err := s.processDefinition(def)
		if err != nil {
			s.logger.Error("unable to write knowledge base article",
				zap.String("artifact", def.Name), zap.Error(err))
			result = false
			break
		}
		if !ok {
			result = false
		}
	}

	return result
}

// processDefinition classifies one definition and reports whether it ends
// the run documented (or excusably undocumented, per the ProcessFile
// policy). Declines fold into the boolean; a render or write failure is
// returned as an error.
func (s *Synchronizer) processDefinition(def *artifacts.Definition) (bool, error) {
	if len(def.URLs) == 0 {
		s.logger.Info("artifact definition is missing URLs",
			zap.String("artifact", def.Name))
	}

	documented := false
	for _, url := range def.URLs {
		if strings.HasPrefix(url, kbURLPrefix) {
			documented = true
		} else {
			s.logger.Info("URL outside knowledge base",
				zap.String("artifact", def.Name), zap.String("url", url))
		}
	}
	if documented {
		return true, nil
	}

	if _, err := s.CreateArticle(def); err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedName), errors.Is(err, ErrArticleExists):
			return true, nil
		case errors.Is(err, ErrNoKBPath):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}
