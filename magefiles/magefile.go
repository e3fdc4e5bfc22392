//go:build mage

// Package main contains Mage build targets for artifact-kb developer tooling.
// Implements: docs/ARCHITECTURE § Developer Tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/artifact-kb/pkg/types"
)

// projectDirs lists the working directories a local checkout expects.
var projectDirs = []string{
	"definitions",
	"kb/windows",
}

const configFile = "artifact-kb.yaml"

// Init creates the local working directories and a starter config file
// pointing sync at the kb/ checkout.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	if _, err := os.Stat(configFile); err == nil {
		fmt.Println("Config file already present.")
		return nil
	}

	cfg := types.ToolConfig{
		Sync:    types.SyncConfig{KBPath: "kb"},
		Logging: types.LoggingConfig{Level: "info"},
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering starter config: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	fmt.Printf("Wrote starter config to %s\n", configFile)
	return nil
}

const (
	binDir  = "bin"
	binName = "artifact-kb"
	cmdPkg  = "./cmd/artifact-kb"
)

// Build compiles the CLI binary into bin/, stamping the version from git
// when available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)

	args := []string{"build", "-o", out}
	if v := gitVersion(); v != "" {
		args = append(args, "-ldflags", "-X main.version="+v)
	}
	args = append(args, cmdPkg)

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// All builds the binary and runs the test suite.
func All() {
	mg.Deps(Build, Test)
}

// Stats prints project metrics: Go production/test LOC plus the size of
// the local definitions corpus and knowledge base.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	defs, err := countFiles("definitions", ".yaml")
	if err != nil {
		return err
	}
	articles, err := countFiles("kb", ".md")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Definition files:               %d\n", defs)
	fmt.Printf("Knowledge base articles:        %d\n", articles)
	return nil
}

// gitVersion returns a short version string from git, or "" outside a
// checkout.
func gitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// countGoLines walks the directory tree and counts non-blank lines in Go
// files. If testOnly is true, count only _test.go files; otherwise count
// non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := strings.HasSuffix(path, "_test.go")
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countFiles counts files with the given extension under root. A missing
// root counts as zero.
func countFiles(root, ext string) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ext {
			total++
		}
		return nil
	})
	return total, err
}
