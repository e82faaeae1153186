package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodeProfile writes p as a YAML document.
func EncodeProfile(w io.Writer, p Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return enc.Close()
}

// DecodeProfile reads one YAML document. Unknown fields are rejected so that
// typos in a content file surface instead of silently dropping text.
// Empty lists are omitted on encode and decode as nil.
func DecodeProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return Profile{}, fmt.Errorf("decoding profile: empty document")
		}
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return p, nil
}

// LoadProfile reads and validates a content file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading content file: %w", err)
	}
	p, err := DecodeProfile(bytes.NewReader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
