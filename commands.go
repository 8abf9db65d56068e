package main

import (
	"encoding/json"
	"fmt"
	"io"
	"langtypes/lang"
	"langtypes/util"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const missing = "-"

type languageRecord struct {
	Name       string   `json:"name" yaml:"name"`
	Identifier string   `json:"identifier" yaml:"identifier"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

func lookupExtensions(w io.Writer, table *lang.Table, extensions []string) {
	for _, ext := range extensions {
		language, found := table.FromExtension(ext)
		printLookup(w, table, ext, language, found)
	}
}

func lookupNames(w io.Writer, table *lang.Table, names []string) {
	for _, name := range names {
		language, found := table.FromName(name)
		printLookup(w, table, name, language, found)
	}
}

func printLookup(w io.Writer, table *lang.Table, key string, language lang.Language, found bool) {
	if !found {
		_, _ = fmt.Fprintf(w, "%v\t%v\n", key, missing)
		return
	}
	_, _ = fmt.Fprintf(w, "%v\t%v\n", key, table.Name(language))
}

func parseName(w io.Writer, table *lang.Table, name string) error {
	language, err := table.Parse(name)
	if err != nil {
		return util.WithCode(util.ERROR_UNKNOWN_LANGUAGE, err)
	}
	_, err = fmt.Fprintln(w, table.Name(language))
	return err
}

func printExtensions(w io.Writer, table *lang.Table, name string) error {
	language, err := table.Parse(name)
	if err != nil {
		return util.WithCode(util.ERROR_UNKNOWN_LANGUAGE, err)
	}
	for _, ext := range table.Extensions(language) {
		if _, err = fmt.Fprintln(w, ext); err != nil {
			return err
		}
	}
	return nil
}

func languageRecords(table *lang.Table) []languageRecord {
	records := make([]languageRecord, 0, table.Len())
	for _, language := range table.All() {
		records = append(records, languageRecord{
			Name:       table.Name(language),
			Identifier: table.Identifier(language),
			Extensions: table.Extensions(language),
		})
	}
	return records
}

func listLanguages(w io.Writer, table *lang.Table, format string) error {
	records := languageRecords(table)
	switch strings.ToLower(format) {
	case formatText:
		for _, record := range records {
			_, err := fmt.Fprintf(w, "%v\t%v\t%v\n", record.Name, record.Identifier, strings.Join(record.Extensions, ","))
			if err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported list format '%v', expected one of %v, %v, %v", format, formatText, formatJSON, formatYAML)
	}
}

// checkTable validates table and logs every key claimed by more than one
// definition. With strict, collisions fail the check as well.
func checkTable(table *lang.Table, strict bool) error {
	err := table.Validate()
	if err != nil {
		return util.WithCode(util.ERROR_INCONSISTENT_TABLE, err)
	}

	collisions := table.Collisions()
	for _, collision := range collisions {
		log.Printf("%v '%v' of %v is overridden by %v", collision.Kind, collision.Key, table.Name(collision.Previous), table.Name(collision.Winner))
	}
	if strict && len(collisions) > 0 {
		return util.WithCode(util.ERROR_COLLIDING_DEFINITION, fmt.Errorf("%v colliding definitions", len(collisions)))
	}
	return nil
}
