package lang

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"langtypes/definitions"
)

// Collision is a key claimed by two languages while a table was built. The
// key belongs to Winner; Previous lost it.
type Collision struct {
	Kind     definitions.Kind
	Key      string
	Previous Language
	Winner   Language
}

// Table holds the language enumeration together with its extension and name
// tables. A Table is immutable once built and safe for concurrent use.
type Table struct {
	languages   []Language
	names       []string
	identifiers []string
	extensions  map[string]Language
	byName      map[string]Language
	byLanguage  [][]string
	collisions  []Collision
}

// Build creates a table from definitions. Languages are numbered from 1 in
// definition order, so building the embedded definitions yields the same
// values as the generated constants. When two definitions claim the same
// extension or name the later one wins; every such case is kept in
// Collisions.
func Build(defs []definitions.Definition) (*Table, error) {
	resolved, err := definitions.Resolve(defs)
	if err != nil {
		return nil, fmt.Errorf("failed to build language table: %w", err)
	}

	count := len(resolved.Records)
	languages := make([]Language, count)
	names := make([]string, count+1)
	identifiers := make([]string, count+1)
	for i, record := range resolved.Records {
		l := Language(i + 1)
		languages[i] = l
		names[l] = record.Name
		identifiers[l] = record.GoIdentifier()
	}

	extensions := make(map[string]Language, len(resolved.Extensions))
	for _, entry := range resolved.Extensions {
		extensions[entry.Key] = Language(entry.Record + 1)
	}
	byName := make(map[string]Language, len(resolved.Names))
	for _, entry := range resolved.Names {
		byName[entry.Key] = Language(entry.Record + 1)
	}

	var collisions []Collision
	for _, c := range resolved.Collisions {
		collisions = append(collisions, Collision{
			Kind:     c.Kind,
			Key:      c.Key,
			Previous: Language(c.Previous + 1),
			Winner:   Language(c.Winner + 1),
		})
	}

	return newTable(languages, names, identifiers, extensions, byName, collisions), nil
}

func newTable(
	languages []Language,
	names []string,
	identifiers []string,
	extensions map[string]Language,
	byName map[string]Language,
	collisions []Collision,
) *Table {
	table := &Table{
		languages:   languages,
		names:       names,
		identifiers: identifiers,
		extensions:  extensions,
		byName:      byName,
		byLanguage:  make([][]string, len(names)),
		collisions:  collisions,
	}
	for ext, l := range extensions {
		if table.contains(l) {
			table.byLanguage[l] = append(table.byLanguage[l], ext)
		}
	}
	for _, exts := range table.byLanguage {
		slices.Sort(exts)
	}
	return table
}

func (t *Table) contains(l Language) bool {
	return l >= 1 && int(l) <= len(t.languages)
}

// Len returns the number of languages in the table.
func (t *Table) Len() int {
	return len(t.languages)
}

// All returns every language of the table in definition order. The slice is
// a copy.
func (t *Table) All() []Language {
	return slices.Clone(t.languages)
}

func (t *Table) FromExtension(ext string) (Language, bool) {
	l, found := t.extensions[strings.TrimPrefix(ext, ".")]
	return l, found
}

func (t *Table) FromPath(path string) (Language, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	return t.FromExtension(ext)
}

func (t *Table) FromName(name string) (Language, bool) {
	l, found := t.byName[definitions.NameKey(name)]
	return l, found
}

func (t *Table) Parse(name string) (Language, error) {
	l, found := t.FromName(name)
	if !found {
		return 0, &UnknownLanguageError{Input: name}
	}
	return l, nil
}

// Name returns the canonical name of l within this table.
func (t *Table) Name(l Language) string {
	if !t.contains(l) {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return t.names[l]
}

// Identifier returns the Go identifier declared for l, or "" if l is not in
// the table.
func (t *Table) Identifier(l Language) string {
	if !t.contains(l) {
		return ""
	}
	return t.identifiers[l]
}

// Extensions returns the sorted extensions mapping to l.
func (t *Table) Extensions(l Language) []string {
	if !t.contains(l) {
		return []string{}
	}
	exts := make([]string, len(t.byLanguage[l]))
	copy(exts, t.byLanguage[l])
	return exts
}

// Collisions returns the keys that were claimed by more than one language
// when the table was built, in build order.
func (t *Table) Collisions() []Collision {
	return slices.Clone(t.collisions)
}

// Validate checks that the enumeration and both tables agree: every language
// resolves from its own canonical name, and every table value is a language
// of the table.
func (t *Table) Validate() error {
	var errs []error
	for _, l := range t.languages {
		name := t.names[l]
		resolved, found := t.byName[definitions.NameKey(name)]
		if !found {
			errs = append(errs, fmt.Errorf("%v: canonical name '%v' is missing from the name table", t.identifiers[l], name))
			continue
		}
		if resolved != l {
			errs = append(errs, fmt.Errorf("%v: canonical name '%v' resolves to %v", t.identifiers[l], name, t.Name(resolved)))
		}
	}
	for _, ext := range slices.Sorted(maps.Keys(t.extensions)) {
		if l := t.extensions[ext]; !t.contains(l) {
			errs = append(errs, fmt.Errorf("extension '%v' maps to unknown language %d", ext, uint8(l)))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(t.byName)) {
		if l := t.byName[name]; !t.contains(l) {
			errs = append(errs, fmt.Errorf("name '%v' maps to unknown language %d", name, uint8(l)))
		}
	}
	return errors.Join(errs...)
}
