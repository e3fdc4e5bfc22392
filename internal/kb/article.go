// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kb

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/pdiddy/artifact-kb/pkg/artifacts"
)

const (
	// platformPrefix is the artifact name prefix of the only platform
	// family stub generation currently supports.
	platformPrefix = "Windows"

	// platformDir is the knowledge-base subdirectory generated articles
	// are placed in.
	platformDir = "windows"

	articleExt = ".md"
)

// Stub generation decline reasons, all soft: the article was not written
// and the caller decides whether that matters.
var (
	// ErrNoKBPath reports that no knowledge-base directory is configured.
	ErrNoKBPath = errors.New("no knowledge base path configured")

	// ErrUnsupportedName reports an artifact name outside the supported
	// platform family.
	ErrUnsupportedName = errors.New("unsupported artifact name prefix")

	// ErrArticleExists reports that an article already exists at the
	// derived path. Existing articles are never overwritten.
	ErrArticleExists = errors.New("knowledge base article already exists")
)

// articleTemplate is the stub article skeleton. Values land in their slots
// verbatim; braces and markdown in descriptions or URLs pass through
// untouched because nothing re-scans the rendered text.
const articleTemplate = `## {{.Title}}

{{.Description}}

### References

{{range .URLs}}* [TODO: add description]({{.}})
{{end}}`

var articleTmpl = template.Must(template.New("article").Parse(articleTemplate))

// articleData is the typed model the stub template renders from.
type articleData struct {
	Title       string
	Description string
	URLs        []string
}

// CreateArticle generates a stub knowledge base article for def and reports
// whether a new article file was written. Declines return false with
// ErrUnsupportedName, ErrNoKBPath, or ErrArticleExists plus a logged
// reason; the name check runs first so unsupported artifacts decline the
// same way whether or not a knowledge base is configured. Render and write
// failures return the underlying error.
func (s *Synchronizer) CreateArticle(def *artifacts.Definition) (bool, error) {
	if !strings.HasPrefix(def.Name, platformPrefix) {
		s.logger.Info("unable to create knowledge base article",
			zap.String("artifact", def.Name))
		return false, ErrUnsupportedName
	}

	if s.kbPath == "" {
		s.logger.Info("missing knowledge base article",
			zap.String("artifact", def.Name))
		return false, ErrNoKBPath
	}

	title := strings.TrimPrefix(def.Name, platformPrefix)
	articlePath := filepath.Join(s.kbPath, platformDir, title+articleExt)

	if _, err := os.Stat(articlePath); err == nil {
		s.logger.Info("knowledge base article exists but is not referenced",
			zap.String("artifact", def.Name), zap.String("path", articlePath))
		return false, ErrArticleExists
	}

	content, err := renderArticle(title, def)
	if err != nil {
		return false, fmt.Errorf("rendering article for %s: %w", def.Name, err)
	}

	if err := writeFileAtomic(articlePath, content); err != nil {
		return false, fmt.Errorf("writing article for %s: %w", def.Name, err)
	}

	s.logger.Info("created knowledge base article",
		zap.String("artifact", def.Name), zap.String("path", articlePath))
	return true, nil
}

// renderArticle produces the stub article body: title heading, description
// (or a TODO placeholder), and one reference line per URL in input order.
func renderArticle(title string, def *artifacts.Definition) ([]byte, error) {
	description := def.Doc
	if description == "" {
		description = "TODO: add short summary"
	}

	data := articleData{
		Title:       title,
		Description: description,
		URLs:        def.URLs,
	}

	var buf bytes.Buffer
	if err := articleTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to path via a temp file in the destination
// directory followed by a rename, so an interrupted run never leaves a
// partial article in the knowledge base.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating article directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".article-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing article: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting article permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("placing article: %w", err)
	}
	return nil
}
