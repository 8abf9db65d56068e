package options

import (
	"errors"
	"langtypes/lang"
	"langtypes/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parseArgs(args ...string) (*Options, error) {
	var opts *Options
	app := &cli.App{
		Name:  "langtypes",
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Flags: ScanFlags,
				Action: func(ctx *cli.Context) error {
					var err error
					opts, err = ParseOptions(ctx)
					return err
				},
			},
		},
	}
	err := app.Run(append([]string{"langtypes"}, args...))
	return opts, err
}

func fakeClone(t *testing.T) string {
	clonePath := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(clonePath, ".git"), 0777))
	return clonePath
}

func requireStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var withCode *util.ErrorWithCode
	require.True(t, errors.As(err, &withCode), "expected an error with code, got %v", err)
	assert.Equal(t, statusCode, withCode.StatusCode)
}

func TestParseOptions(t *testing.T) {
	clonePath := fakeClone(t)
	outputPath := filepath.Join(t.TempDir(), "nested", "stats.json")

	opts, err := parseArgs("--vv", "scan",
		"--src", clonePath,
		"--out", outputPath,
		"--include", "**/*.go,**/*.py",
		"--languages", "golang, PY",
		"--max-size", "2",
		"--workers", "0",
	)
	require.NoError(t, err)

	assert.Equal(t, clonePath, opts.ClonePath)
	assert.Equal(t, "HEAD", opts.Revision)
	assert.Equal(t, []string{"**/*.go", "**/*.py"}, opts.IncludePatterns)
	assert.Equal(t, []string{}, opts.ExcludePatterns)
	assert.Equal(t, []lang.Language{lang.Go, lang.Python}, opts.Languages)
	assert.Equal(t, int64(2*1024*1024), opts.MaxFileSizeBytes)
	assert.Equal(t, 1, opts.Workers)
	assert.True(t, opts.VerboseLogging)
	assert.Same(t, lang.Default(), opts.Table)
	assert.DirExists(t, filepath.Dir(outputPath))
}

func TestParseOptionsCustomDefinitions(t *testing.T) {
	clonePath := fakeClone(t)
	definitionsPath := filepath.Join(t.TempDir(), "langs.yaml")
	require.NoError(t, os.WriteFile(definitionsPath, []byte("- name: Markdown\n  extensions: [md]\n  aliases: [md]\n"), 0666))

	opts, err := parseArgs("-d", definitionsPath, "scan", "--src", clonePath, "-l", "md")
	require.NoError(t, err)
	require.Equal(t, 1, opts.Table.Len())
	assert.Equal(t, []lang.Language{1}, opts.Languages)
	assert.Equal(t, "Markdown", opts.Table.Name(opts.Languages[0]))
	assert.Equal(t, StdoutPath, opts.OutputPath)

	_, err = parseArgs("-d", definitionsPath, "scan", "--src", clonePath, "-l", "go")
	requireStatusCode(t, err, util.ERROR_UNKNOWN_LANGUAGE)
}

func TestParseOptionsErrors(t *testing.T) {
	clonePath := fakeClone(t)

	_, err := parseArgs("scan", "--src", filepath.Join(clonePath, "missing"))
	requireStatusCode(t, err, util.ERROR_BAD_CLONE_PATH)

	_, err = parseArgs("scan", "--src", t.TempDir())
	requireStatusCode(t, err, util.ERROR_BAD_CLONE_PATH)

	_, err = parseArgs("scan", "--src", clonePath, "--languages", "not-a-language")
	requireStatusCode(t, err, util.ERROR_UNKNOWN_LANGUAGE)
	assert.ErrorIs(t, err, lang.ErrUnknownLanguage)

	_, err = parseArgs("-d", filepath.Join(clonePath, "missing.json"), "scan", "--src", clonePath)
	requireStatusCode(t, err, util.ERROR_BAD_DEFINITIONS)

	outputFile := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(outputFile, nil, 0666))
	_, err = parseArgs("scan", "--src", clonePath, "--out", filepath.Join(outputFile, "stats.json"))
	requireStatusCode(t, err, util.ERROR_BAD_OUTPUT_PATH)
}

func TestSplitListFlag(t *testing.T) {
	assert.Equal(t, []string{}, splitListFlag(""))
	assert.Equal(t, []string{"a"}, splitListFlag("a"))
	assert.Equal(t, []string{"a", "b"}, splitListFlag("a,b"))
}

func TestLoadTableDefault(t *testing.T) {
	app := &cli.App{
		Flags: GlobalFlags,
		Action: func(ctx *cli.Context) error {
			table, err := LoadTable(ctx)
			require.NoError(t, err)
			assert.Same(t, lang.Default(), table)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"langtypes"}))
}
