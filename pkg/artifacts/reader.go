// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifacts

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Decoder reads artifact definitions from a YAML stream one document at a
// time. The stream is lazy and single-pass: definitions are decoded on
// demand and cannot be re-read.
type Decoder struct {
	dec  *yaml.Decoder
	seen map[string]bool
	err  error
}

// NewDecoder returns a Decoder reading from r. Documents with fields
// outside the definition grammar are rejected.
func NewDecoder(r io.Reader) *Decoder {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return &Decoder{
		dec:  dec,
		seen: make(map[string]bool),
	}
}

// Next returns the next definition in the stream. It returns io.EOF when
// the stream is exhausted and a *FormatError when a document violates the
// definition grammar. Once Next has failed it keeps returning the same
// error; definitions delivered before the failure remain valid.
func (d *Decoder) Next() (*Definition, error) {
	if d.err != nil {
		return nil, d.err
	}

	var def Definition
	if err := d.dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			d.err = io.EOF
		} else {
			d.err = &FormatError{Err: err}
		}
		return nil, d.err
	}

	if def.Name == "" {
		d.err = &FormatError{Err: errors.New("definition is missing a name")}
		return nil, d.err
	}
	if d.seen[def.Name] {
		d.err = &FormatError{Err: fmt.Errorf("duplicate definition: %s", def.Name)}
		return nil, d.err
	}
	d.seen[def.Name] = true

	return &def, nil
}
