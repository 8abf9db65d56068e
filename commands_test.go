package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"langtypes/definitions"
	"langtypes/lang"
	"langtypes/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func requireStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var withCode *util.ErrorWithCode
	require.True(t, errors.As(err, &withCode), "expected an error with code, got %v", err)
	assert.Equal(t, statusCode, withCode.StatusCode)
}

func TestLookupExtensions(t *testing.T) {
	var out bytes.Buffer
	lookupExtensions(&out, lang.Default(), []string{"py", ".rs", "xyz123"})
	assert.Equal(t, "py\tPython\n.rs\tRust\nxyz123\t-\n", out.String())
}

func TestLookupNames(t *testing.T) {
	var out bytes.Buffer
	lookupNames(&out, lang.Default(), []string{"c++", "GOLANG", "not-a-language"})
	assert.Equal(t, "c++\tC++\nGOLANG\tGo\nnot-a-language\t-\n", out.String())
}

func TestParseName(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, parseName(&out, lang.Default(), "golang"))
	assert.Equal(t, "Go\n", out.String())

	out.Reset()
	err := parseName(&out, lang.Default(), "not-a-language")
	requireStatusCode(t, err, util.ERROR_UNKNOWN_LANGUAGE)
	assert.ErrorIs(t, err, lang.ErrUnknownLanguage)
	assert.Empty(t, out.String())
}

func TestPrintExtensions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printExtensions(&out, lang.Default(), "r"))
	assert.Equal(t, "R\nRmd\nr\n", out.String())

	err := printExtensions(&out, lang.Default(), "xyz123")
	requireStatusCode(t, err, util.ERROR_UNKNOWN_LANGUAGE)
}

func TestListLanguages(t *testing.T) {
	table, err := lang.Build([]definitions.Definition{
		{Name: "C#", Identifier: "CSharp", Extensions: []string{"cs"}},
		{Name: "Empty"},
	})
	require.NoError(t, err)
	expected := []languageRecord{
		{Name: "C#", Identifier: "CSharp", Extensions: []string{"cs"}},
		{Name: "Empty", Identifier: "Empty", Extensions: []string{}},
	}

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, listLanguages(&out, table, "TEXT"))
		assert.Equal(t, "C#\tCSharp\tcs\nEmpty\tEmpty\t\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, listLanguages(&out, table, formatJSON))
		var records []languageRecord
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		assert.Equal(t, expected, records)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, listLanguages(&out, table, formatYAML))
		var records []languageRecord
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &records))
		assert.Equal(t, expected, records)
	})

	t.Run("unsupported", func(t *testing.T) {
		var out bytes.Buffer
		assert.ErrorContains(t, listLanguages(&out, table, "toml"), "unsupported list format")
	})
}

func TestListDefaultTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listLanguages(&out, lang.Default(), formatJSON))
	var records []languageRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, len(lang.All()))
	assert.Equal(t, languageRecord{Name: "Go", Identifier: "Go", Extensions: []string{"go"}}, records[lang.Go-1])
}

func TestCheckTable(t *testing.T) {
	require.NoError(t, checkTable(lang.Default(), true))

	colliding, err := lang.Build([]definitions.Definition{
		{Name: "Perl", Extensions: []string{"pl"}},
		{Name: "Prolog", Extensions: []string{"pl"}},
	})
	require.NoError(t, err)
	require.NoError(t, checkTable(colliding, false))
	requireStatusCode(t, checkTable(colliding, true), util.ERROR_COLLIDING_DEFINITION)

	stolen, err := lang.Build([]definitions.Definition{
		{Name: "Pascal", Extensions: []string{"pas"}},
		{Name: "Delphi", Aliases: []string{"pascal"}},
	})
	require.NoError(t, err)
	requireStatusCode(t, checkTable(stolen, false), util.ERROR_INCONSISTENT_TABLE)
}
