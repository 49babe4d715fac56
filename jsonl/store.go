// Package jsonl provides JSONL file handling for exported swatches.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/huepick"
)

// Compile-time interface verification.
var _ huepick.SwatchStore = (*Store)(nil)

// Store persists and retrieves Swatch records as JSONL.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads swatches from a JSONL file. Returns empty slice if file doesn't exist.
func (s *Store) Load(path string) ([]huepick.Swatch, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var swatches []huepick.Swatch
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var sw huepick.Swatch
		if err := json.Unmarshal([]byte(line), &sw); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if !huepick.IsHex(sw.Hex) {
			return nil, fmt.Errorf("line %d: invalid hex %q", lineNum, sw.Hex)
		}
		swatches = append(swatches, sw)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return swatches, nil
}

// Save writes swatches to a JSONL file, replacing any previous content and
// creating parent directories if needed.
func (s *Store) Save(path string, swatches []huepick.Swatch) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, sw := range swatches {
		data, err := json.Marshal(sw)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
