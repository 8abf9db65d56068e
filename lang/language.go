package lang

import (
	"fmt"
	"strconv"
	"sync"
)

// Language identifies one supported programming language. The zero value is
// not a language.
type Language uint8

var _ fmt.Stringer = Language(0)

// IsValid reports whether l is one of the generated language constants.
func (l Language) IsValid() bool {
	return l >= 1 && int(l) <= numLanguages
}

func (l Language) String() string {
	return l.Name()
}

// GoString returns the Go syntax of the constant, e.g. "lang.CSharp".
func (l Language) GoString() string {
	if !l.IsValid() {
		return "lang.Language(" + strconv.Itoa(int(l)) + ")"
	}
	return "lang." + identifiers[l]
}

// Identifier returns the name of the Go constant for l, or "" if l is not valid.
func (l Language) Identifier() string {
	if !l.IsValid() {
		return ""
	}
	return identifiers[l]
}

// Extensions returns the file extensions, without leading dot, that classify
// as l. The result is sorted and may be empty.
func (l Language) Extensions() []string {
	return Default().Extensions(l)
}

// MarshalText encodes l as its canonical name.
func (l Language) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid language %d", uint8(l))
	}
	return []byte(l.Name()), nil
}

// UnmarshalText accepts any canonical name or alias, case-insensitively.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

var defaultTable = sync.OnceValue(func() *Table {
	names := make([]string, numLanguages+1)
	for _, l := range allLanguages {
		names[l] = l.Name()
	}
	return newTable(allLanguages[:], names, identifiers[:], extensionTable, nameTable, generatedCollisions)
})

// Default returns the table generated from the embedded definitions. It is
// built on first use and shared by all callers.
func Default() *Table {
	return defaultTable()
}

// All returns every language in definition order.
func All() []Language {
	return Default().All()
}

// FromExtension classifies a file extension. One leading '.' is ignored and
// the rest is matched case-sensitively.
func FromExtension(ext string) (Language, bool) {
	return Default().FromExtension(ext)
}

// FromPath classifies a file path by its extension.
func FromPath(path string) (Language, bool) {
	return Default().FromPath(path)
}

// FromName resolves a canonical name or alias, ignoring ASCII case.
func FromName(name string) (Language, bool) {
	return Default().FromName(name)
}

// Parse is like FromName but returns an *UnknownLanguageError when name does
// not resolve.
func Parse(name string) (Language, error) {
	return Default().Parse(name)
}
