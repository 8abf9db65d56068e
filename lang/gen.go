//go:build ignore

// gen.go writes tables_gen.go from a definitions file.
//
//	go run gen.go -defs ../definitions/languages.json -out tables_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"langtypes/definitions"
)

// identifiers declared by package lang itself.
var reserved = map[string]bool{
	"All":                  true,
	"Build":                true,
	"Collision":            true,
	"Default":              true,
	"ErrUnknownLanguage":   true,
	"FromExtension":        true,
	"FromName":             true,
	"FromPath":             true,
	"Language":             true,
	"Parse":                true,
	"Table":                true,
	"UnknownLanguageError": true,
}

type entry struct {
	Key        string
	Identifier string
}

type collision struct {
	Kind     string
	Key      string
	Previous string
	Winner   string
}

type data struct {
	Source     string
	Languages  []definitions.Definition
	Extensions []entry
	Names      []entry
	Collisions []collision
}

var tmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by gen.go from {{.Source}}; DO NOT EDIT.
{{- if .Collisions}}
//
// Keys claimed by more than one language (the later definition wins):
{{- range .Collisions}}
//	{{.Kind}} {{quote .Key}}: {{.Previous}} -> {{.Winner}}
{{- end}}
{{- end}}

package lang

import "strconv"

const (
{{- range $i, $l := .Languages}}
	{{$l.GoIdentifier}}{{if eq $i 0}} Language = iota + 1{{end}}
{{- end}}
)

const numLanguages = {{len .Languages}}

var allLanguages = [numLanguages]Language{
{{- range .Languages}}
	{{.GoIdentifier}},
{{- end}}
}

// Name returns the canonical display name of l.
func (l Language) Name() string {
	switch l {
{{- range .Languages}}
	case {{.GoIdentifier}}:
		return {{quote .Name}}
{{- end}}
	}
	return "Language(" + strconv.Itoa(int(l)) + ")"
}

var identifiers = [numLanguages + 1]string{
{{- range .Languages}}
	{{.GoIdentifier}}: {{quote .GoIdentifier}},
{{- end}}
}

var extensionTable = map[string]Language{
{{- range .Extensions}}
	{{quote .Key}}: {{.Identifier}},
{{- end}}
}

var nameTable = map[string]Language{
{{- range .Names}}
	{{quote .Key}}: {{.Identifier}},
{{- end}}
}

var generatedCollisions = []Collision{
{{- range .Collisions}}
	{Kind: {{quote .Kind}}, Key: {{quote .Key}}, Previous: {{.Previous}}, Winner: {{.Winner}}},
{{- end}}
}
`))

func main() {
	defsPath := flag.String("defs", "../definitions/languages.json", "definitions file")
	outPath := flag.String("out", "tables_gen.go", "output file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gen: ")

	defs, err := definitions.LoadFile(*defsPath)
	if err != nil {
		log.Fatal(err)
	}
	for _, def := range defs {
		if reserved[def.GoIdentifier()] {
			log.Fatalf("definition '%v': identifier '%v' collides with a declaration of package lang", def.Name, def.GoIdentifier())
		}
	}
	resolved, err := definitions.Resolve(defs)
	if err != nil {
		log.Fatal(err)
	}

	identifierOf := func(record int) string {
		return resolved.Records[record].GoIdentifier()
	}
	d := data{
		Source:    filepath.ToSlash(filepath.Clean(*defsPath)),
		Languages: resolved.Records,
	}
	for _, e := range resolved.Extensions {
		d.Extensions = append(d.Extensions, entry{Key: e.Key, Identifier: identifierOf(e.Record)})
	}
	for _, e := range resolved.Names {
		d.Names = append(d.Names, entry{Key: e.Key, Identifier: identifierOf(e.Record)})
	}
	for _, c := range resolved.Collisions {
		d.Collisions = append(d.Collisions, collision{
			Kind:     string(c.Kind),
			Key:      c.Key,
			Previous: identifierOf(c.Previous),
			Winner:   identifierOf(c.Winner),
		})
		log.Printf("warning: %v '%v' claimed by %v and %v, %v wins", c.Kind, c.Key, identifierOf(c.Previous), identifierOf(c.Winner), identifierOf(c.Winner))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("generated code does not parse: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatal(fmt.Errorf("failed to write %v: %w", *outPath, err))
	}
}
