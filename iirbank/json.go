package iirbank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a bank configuration from JSON and validates it.
func Load(r io.Reader) (*Bank, error) {
	var b Bank

	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("iirbank: invalid bank json: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadFile decodes and validates a bank configuration from a JSON file.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iirbank: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Save encodes the bank configuration as indented JSON.
func (b *Bank) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("iirbank: encode bank json: %w", err)
	}
	return nil
}
