// Package lang identifies programming languages by file extension or by name.
//
// The set of languages is closed and generated from definitions/languages.json:
// each language is a Language constant with one canonical name, any number of
// extensions and any number of aliases. Lookups never fail; they report
// absence with a false second result. Parse is the must-resolve variant and
// returns an *UnknownLanguageError.
//
//	l, ok := lang.FromExtension(".py") // lang.Python, true
//	l, ok = lang.FromName("golang")    // lang.Go, true
//	l.Name()                           // "Go"
//
// Adding a language means editing languages.json and regenerating: the
// constant, its extension entries and its name entries always change together.
// Table.Validate and the package tests check that they agree.
package lang

//go:generate go run gen.go -defs ../definitions/languages.json -out tables_gen.go
