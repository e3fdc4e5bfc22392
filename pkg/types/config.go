// Package types defines shared configuration structures for the
// artifact-kb tool.
// Implements: prd002-kb-sync (SyncConfig, R1.2, R2.1).
package types

// SyncConfig holds settings for the knowledge base synchronization stage.
// Per prd002-kb-sync R1.2, R2.1.
type SyncConfig struct {
	// KBPath is the checkout directory of the artifacts-kb content
	// repository (contains windows/). When empty, stub generation is
	// disabled and missing articles are only reported.
	KBPath string `json:"kb_path,omitempty" yaml:"kb_path,omitempty"`
}

// LoggingConfig holds settings for diagnostic output.
type LoggingConfig struct {
	// Level is the minimum log level emitted: debug, info, warn, or error
	// (default info).
	Level string `json:"log_level" yaml:"log_level"`
}

// ToolConfig groups all configuration sections. It mirrors the layout of
// the artifact-kb.yaml config file read at startup; flags take precedence
// over file values.
type ToolConfig struct {
	Sync    SyncConfig    `json:"sync" yaml:"sync"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}
