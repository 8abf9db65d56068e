// Package definitions reads the language definitions file and resolves it into
// the ordered records, extension entries and name entries the lang package is
// built from.
package definitions

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxRecords is the number of languages a definitions file may declare.
const MaxRecords = 255

//go:embed languages.json
var embeddedJSON []byte

// Definition is one language record of a definitions file.
type Definition struct {
	Name       string   `json:"name" yaml:"name"`
	Identifier string   `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Aliases    []string `json:"aliases" yaml:"aliases"`
}

// GoIdentifier returns the identifier of the record, falling back to its name.
func (d Definition) GoIdentifier() string {
	if d.Identifier != "" {
		return d.Identifier
	}
	return d.Name
}

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported definitions file extension '%v'", filepath.Ext(path))
}

var embedded = sync.OnceValues(func() ([]Definition, error) {
	return Load(bytes.NewReader(embeddedJSON), FormatJSON)
})

// Embedded returns the reference definitions compiled into the binary.
// The returned slice is a copy and may be modified by the caller.
func Embedded() ([]Definition, error) {
	defs, err := embedded()
	if err != nil {
		return nil, err
	}
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out, nil
}

// LoadFile reads and validates a JSON or YAML definitions file.
func LoadFile(path string) ([]Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions file '%v': %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	defs, err := Load(file, format)
	if err != nil {
		return nil, fmt.Errorf("definitions file '%v': %w", path, err)
	}
	return defs, nil
}

// Load decodes a definitions document and validates it. Unknown fields are
// rejected in both formats.
func Load(r io.Reader, format Format) ([]Definition, error) {
	var defs []Definition
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&defs); err != nil {
			return nil, fmt.Errorf("failed to decode json definitions: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml definitions: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definitions format %v", format)
	}
	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Validate checks the structural rules of a definitions list. Key collisions
// are not errors; they are reported by Resolve.
func Validate(defs []Definition) error {
	if len(defs) > MaxRecords {
		return fmt.Errorf("too many definitions: %v, at most %v are supported", len(defs), MaxRecords)
	}
	var errs []error
	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, fmt.Errorf("definition #%v: empty name", i+1))
			continue
		}
		identifier := def.GoIdentifier()
		if !isExportedIdentifier(identifier) {
			errs = append(errs, fmt.Errorf("definition '%v': identifier '%v' is not an exported Go identifier", def.Name, identifier))
			continue
		}
		if previous, found := seen[identifier]; found {
			errs = append(errs, fmt.Errorf("definition '%v': identifier '%v' already used by '%v'", def.Name, identifier, defs[previous].Name))
			continue
		}
		seen[identifier] = i
	}
	return errors.Join(errs...)
}

func isExportedIdentifier(s string) bool {
	if !token.IsIdentifier(s) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}
