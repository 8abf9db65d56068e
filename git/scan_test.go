package git

import (
	"encoding/json"
	"errors"
	"langtypes/definitions"
	"langtypes/lang"
	"langtypes/options"
	"langtypes/stats"
	"langtypes/util"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/suite"
)

var repositoryFiles = map[string]string{
	"main.go":           "package main\n\nfunc main() {\n}\n",
	"lib/util.py":       "import os\n# c\nx = 1\n",
	"web/index.html":    "<html>\n</html>\n",
	"README.md":         "# readme\n",
	"classes/Foo.class": "\xca\xfe\xba\xbe",
	"scripts/run.sh":    "#!/bin/sh\necho hi\n",
	"vendor/dep/dep.go": "package dep\n",
}

type scanTestSuite struct {
	suite.Suite
	clonePath  string
	commitHash string
	outputPath string
}

func TestScanTestSuite(t *testing.T) {
	suite.Run(t, new(scanTestSuite))
}

func initLocal(files map[string]string) (clonePath string, commitHash string) {
	var err error
	clonePath, err = os.MkdirTemp("", "langtypes-scan-")
	if err != nil {
		panic(err)
	}

	repository, err := git.PlainInit(clonePath, false)
	if err != nil {
		panic(err)
	}
	if len(files) == 0 {
		return clonePath, ""
	}

	worktree, err := repository.Worktree()
	if err != nil {
		panic(err)
	}
	for name, content := range files {
		filePath := filepath.Join(clonePath, filepath.FromSlash(name))
		if err = os.MkdirAll(filepath.Dir(filePath), 0777); err != nil {
			panic(err)
		}
		if err = os.WriteFile(filePath, []byte(content), 0666); err != nil {
			panic(err)
		}
		if _, err = worktree.Add(name); err != nil {
			panic(err)
		}
	}
	hash, err := worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "scanner",
			Email: "scanner@example.com",
			When:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		panic(err)
	}
	return clonePath, hash.String()
}

func (s *scanTestSuite) SetupTest() {
	s.clonePath, s.commitHash = initLocal(repositoryFiles)
	outputDir, err := os.MkdirTemp("", "langtypes-output-")
	if err != nil {
		panic(err)
	}
	s.outputPath = filepath.Join(outputDir, "stats.json")
}

func (s *scanTestSuite) TearDownTest() {
	err := os.RemoveAll(s.clonePath)
	if err != nil {
		panic(err)
	}
	_ = os.RemoveAll(filepath.Dir(s.outputPath))
}

func (s *scanTestSuite) opts() *options.Options {
	return &options.Options{
		ClonePath:        s.clonePath,
		Revision:         "HEAD",
		OutputPath:       s.outputPath,
		VerboseLogging:   true,
		MaxFileSizeBytes: 6 * 1024 * 1024,
		Workers:          2,
	}
}

func (s *scanTestSuite) requireLanguage(result *stats.CodeStats, name string, files int, linesOfCode float64) {
	languageStats, found := result.CountersByLanguage[name]
	s.Require().True(found, "missing %v in %v", name, result.Languages())
	s.Require().Equal(files, languageStats.NumberOfFiles, "files of %v", name)
	s.Require().Equal(linesOfCode, languageStats.LinesOfCode, "lines of %v", name)
}

func (s *scanTestSuite) TestScanDefaultTable() {
	result, err := Scan(s.opts())
	s.Require().Nil(err)

	s.requireLanguage(result, "Go", 1, 3)
	s.requireLanguage(result, "Python", 1, 2)
	s.requireLanguage(result, "HTML", 1, 2)
	s.requireLanguage(result, "Java", 1, 0)
	s.requireLanguage(result, "Shell", 1, 1)
	s.Require().Len(result.CountersByLanguage, 5)
	s.Require().Equal(6, result.TotalFileCount)
	s.Require().Equal(1, result.UnclassifiedFileCount)
	s.Require().Equal(0, result.SnapshotSizeInMb)
}

func (s *scanTestSuite) TestScanByCommitHash() {
	opts := s.opts()
	opts.Revision = s.commitHash
	result, err := Scan(opts)
	s.Require().Nil(err)
	s.Require().Equal(6, result.TotalFileCount)
}

func (s *scanTestSuite) TestScanIncludeNoiseDirs() {
	opts := s.opts()
	opts.IncludeNoiseDirs = true
	result, err := Scan(opts)
	s.Require().Nil(err)

	s.requireLanguage(result, "Go", 2, 4)
	s.Require().Equal(7, result.TotalFileCount)
}

func (s *scanTestSuite) TestScanSelectedLanguages() {
	opts := s.opts()
	opts.Languages = []lang.Language{lang.Go, lang.Python}
	result, err := Scan(opts)
	s.Require().Nil(err)

	s.Require().Len(result.CountersByLanguage, 2)
	s.requireLanguage(result, "Go", 1, 3)
	s.requireLanguage(result, "Python", 1, 2)
	s.Require().Equal(2, result.TotalFileCount)
	s.Require().Equal(0, result.UnclassifiedFileCount)
}

func (s *scanTestSuite) TestScanWithExcludeAndTextOnly() {
	opts := s.opts()
	opts.ExcludePatterns = []string{"**/*.py"}
	opts.TextFilesOnly = true
	result, err := Scan(opts)
	s.Require().Nil(err)

	s.Require().NotContains(result.CountersByLanguage, "Python")
	s.Require().NotContains(result.CountersByLanguage, "Java")
	s.Require().Equal(4, result.TotalFileCount)
}

func (s *scanTestSuite) TestScanWithIncludePattern() {
	opts := s.opts()
	opts.IncludePatterns = []string{"**/*.go"}
	result, err := Scan(opts)
	s.Require().Nil(err)

	s.requireLanguage(result, "Go", 2, 4)
	s.Require().Equal(2, result.TotalFileCount)
}

func (s *scanTestSuite) TestScanCustomTable() {
	table, err := lang.Build([]definitions.Definition{
		{Name: "Markdown", Extensions: []string{"md"}},
		{Name: "Go", Extensions: []string{"go"}},
	})
	s.Require().Nil(err)

	opts := s.opts()
	opts.Table = table
	result, err := Scan(opts)
	s.Require().Nil(err)

	s.requireLanguage(result, "Markdown", 1, 0)
	s.requireLanguage(result, "Go", 1, 3)
	s.Require().Equal(6, result.TotalFileCount)
	s.Require().Equal(4, result.UnclassifiedFileCount)
}

func (s *scanTestSuite) TestScanNonExistingRevision() {
	opts := s.opts()
	opts.Revision = "wat"
	_, err := Scan(opts)
	s.Require().NotNil(err)

	var withCode *util.ErrorWithCode
	s.Require().True(errors.As(err, &withCode))
	s.Require().Equal(util.ERROR_NO_REVISION, withCode.StatusCode)
}

func (s *scanTestSuite) TestScanEmptyRepository() {
	emptyClone, _ := initLocal(nil)
	defer func() { _ = os.RemoveAll(emptyClone) }()

	opts := s.opts()
	opts.ClonePath = emptyClone
	result, err := Scan(opts)
	s.Require().Nil(err)
	s.Require().Equal(0, result.TotalFileCount)
	s.Require().Empty(result.CountersByLanguage)
}

func (s *scanTestSuite) TestRunWritesReport() {
	err := Run(s.opts())
	s.Require().Nil(err)

	data, err := os.ReadFile(s.outputPath)
	s.Require().Nil(err)

	var result stats.CodeStats
	err = json.Unmarshal(data, &result)
	s.Require().Nil(err)

	s.Require().Equal(6, result.TotalFileCount)
	for name, languageStats := range result.CountersByLanguage {
		_, found := lang.FromName(name)
		s.Require().True(found, "report key %v must be a canonical name", name)
		s.Require().GreaterOrEqual(languageStats.NumberOfFiles, 1)
	}
}
