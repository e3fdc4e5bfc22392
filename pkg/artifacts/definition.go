// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifacts models digital forensics artifact definitions and
// decodes them from YAML definition files. The definition grammar is owned
// by the upstream artifact corpus; this package is the boundary between
// that grammar and the rest of the tool.
// Implements: prd001-definitions (R1-R4).
package artifacts

// Definition describes one forensic artifact: a named data source with a
// description, collection sources, and reference URLs.
// Per prd001-definitions R1.1: name is required and unique within a file;
// every other field is optional.
type Definition struct {
	// Name identifies the artifact (e.g. "WindowsEventLogs").
	Name string `json:"name" yaml:"name"`

	// Aliases lists alternate names the artifact is known by.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Doc is the free-text description. The first line is the short
	// summary; anything after it is detail.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Sources lists where the artifact data is collected from.
	Sources []Source `json:"sources,omitempty" yaml:"sources,omitempty"`

	// SupportedOS lists the operating systems the artifact applies to.
	SupportedOS []string `json:"supported_os,omitempty" yaml:"supported_os,omitempty"`

	// URLs lists reference links in source order. A definition counts as
	// documented when at least one URL points into the knowledge base.
	URLs []string `json:"urls,omitempty" yaml:"urls,omitempty"`
}

// Source describes one collection source of an artifact, such as a set of
// file paths or registry keys.
type Source struct {
	// Type is the source kind (e.g. "FILE", "REGISTRY_KEY", "COMMAND").
	Type string `json:"type" yaml:"type"`

	// Attributes holds the type-specific parameters, such as "paths" for
	// FILE sources or "keys" for REGISTRY_KEY sources.
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// SupportedOS narrows the operating systems this source applies to.
	SupportedOS []string `json:"supported_os,omitempty" yaml:"supported_os,omitempty"`

	// Provides lists knowledge-base variables the source supplies values
	// for (e.g. "environ_systemroot").
	Provides []string `json:"provides,omitempty" yaml:"provides,omitempty"`
}
