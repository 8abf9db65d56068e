package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// CodeStats represents the repository statistics output
type CodeStats struct {
	CountersByLanguage    map[string]*LanguageStats `json:"countersByLanguage"`
	TotalFileCount        int                       `json:"totalFileCount"`
	UnclassifiedFileCount int                       `json:"unclassifiedFileCount"`
	SnapshotSizeInMb      int                       `json:"snapshotSizeInMb"`
	totalSizeBytes        int64
}

// LanguageStats represents statistics for a specific language
type LanguageStats struct {
	NumberOfFiles int     `json:"numberOfFiles"`
	LinesOfCode   float64 `json:"linesOfCode"`
}

// NewCodeStats creates a new CodeStats instance with initialized maps
func NewCodeStats() *CodeStats {
	return &CodeStats{
		CountersByLanguage: make(map[string]*LanguageStats),
	}
}

// AddFile adds a file's stats to the bucket of the language with the given
// canonical name and accumulates total size
func (cs *CodeStats) AddFile(language string, linesOfCode int, sizeBytes int64) {
	cs.TotalFileCount++
	cs.totalSizeBytes += sizeBytes

	if _, exists := cs.CountersByLanguage[language]; !exists {
		cs.CountersByLanguage[language] = &LanguageStats{}
	}

	cs.CountersByLanguage[language].NumberOfFiles++
	cs.CountersByLanguage[language].LinesOfCode += float64(linesOfCode)
}

// AddUnclassifiedFile counts a file no language claims
func (cs *CodeStats) AddUnclassifiedFile(sizeBytes int64) {
	cs.TotalFileCount++
	cs.UnclassifiedFileCount++
	cs.totalSizeBytes += sizeBytes
}

// Languages returns the names of the languages seen, most files first
func (cs *CodeStats) Languages() []string {
	names := make([]string, 0, len(cs.CountersByLanguage))
	for name := range cs.CountersByLanguage {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		left, right := cs.CountersByLanguage[names[i]], cs.CountersByLanguage[names[j]]
		if left.NumberOfFiles != right.NumberOfFiles {
			return left.NumberOfFiles > right.NumberOfFiles
		}
		return names[i] < names[j]
	})
	return names
}

// Finalize calculates derived fields (e.g. snapshot size in MB) from accumulated data
func (cs *CodeStats) Finalize() {
	megabytes := float64(cs.totalSizeBytes) / (1024 * 1024)
	cs.SnapshotSizeInMb = int(math.Round(megabytes))
}

// WriteJSON writes the indented JSON form of the stats
func (cs *CodeStats) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cs); err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return nil
}
