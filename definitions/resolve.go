package definitions

import "strings"

// Kind names the table a key belongs to.
type Kind string

const (
	KindExtension Kind = "extension"
	KindName      Kind = "name"
)

// Entry binds a table key to the index of the record that owns it.
type Entry struct {
	Key    string
	Record int
}

// Collision records a key claimed by more than one record. Winner is the
// later record, which owns the key after resolution.
type Collision struct {
	Kind     Kind
	Key      string
	Previous int
	Winner   int
}

// Resolved is the output of the table builder: records in authoring order and
// the two key tables after last-write-wins merging. Entries keep the position
// of the first insertion of their key.
type Resolved struct {
	Records    []Definition
	Extensions []Entry
	Names      []Entry
	Collisions []Collision
}

// ExtensionKey normalizes an extension for the extension table: leading
// separators are removed, case is preserved.
func ExtensionKey(ext string) string {
	return strings.TrimLeft(ext, ".")
}

// NameKey folds a name or alias for the name table. Only ASCII letters are
// lowercased; any other byte is kept as is.
func NameKey(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; 'A' <= c && c <= 'Z' {
			return asciiLower(name, i)
		}
	}
	return name
}

func asciiLower(s string, from int) string {
	b := []byte(s)
	for i := from; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Resolve applies the build policy to defs: record order is kept, and a key
// claimed twice belongs to the later record. Identical re-insertions by the
// same record are not collisions.
func Resolve(defs []Definition) (*Resolved, error) {
	if err := Validate(defs); err != nil {
		return nil, err
	}
	resolved := &Resolved{
		Records: make([]Definition, len(defs)),
	}
	copy(resolved.Records, defs)

	extensions := newEntryTable(KindExtension)
	names := newEntryTable(KindName)
	for i, def := range defs {
		for _, ext := range def.Extensions {
			extensions.insert(ExtensionKey(ext), i)
		}
		names.insert(NameKey(def.Name), i)
		for _, alias := range def.Aliases {
			names.insert(NameKey(alias), i)
		}
	}

	resolved.Extensions = extensions.entries
	resolved.Names = names.entries
	resolved.Collisions = append(extensions.collisions, names.collisions...)
	return resolved, nil
}

type entryTable struct {
	kind       Kind
	positions  map[string]int
	entries    []Entry
	collisions []Collision
}

func newEntryTable(kind Kind) *entryTable {
	return &entryTable{
		kind:      kind,
		positions: make(map[string]int),
	}
}

func (table *entryTable) insert(key string, record int) {
	if key == "" {
		return
	}
	position, exists := table.positions[key]
	if !exists {
		table.positions[key] = len(table.entries)
		table.entries = append(table.entries, Entry{Key: key, Record: record})
		return
	}
	previous := table.entries[position].Record
	if previous != record {
		table.collisions = append(table.collisions, Collision{
			Kind:     table.kind,
			Key:      key,
			Previous: previous,
			Winner:   record,
		})
	}
	table.entries[position].Record = record
}
