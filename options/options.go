package options

import (
	"fmt"
	"langtypes/definitions"
	"langtypes/lang"
	"langtypes/util"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
)

// StdoutPath as --out writes the scan report to standard output.
const StdoutPath = "-"

var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "definitions",
		Aliases:  []string{"d"},
		Usage:    "path to a json or yaml language definitions file to use instead of the built-in table",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

var ScanFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "src",
		Aliases:  []string{"s"},
		Usage:    "path to existing git clone as source directory, may contain no more than .git directory, current git state doesn't affect the command",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "rev",
		Aliases:  []string{"r"},
		Value:    "HEAD",
		Usage:    "commit-ish Revision",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Value:    StdoutPath,
		Usage:    "output json file, '-' for stdout. parent directory will be created if does not exist",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of file paths to include, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of file paths to exclude, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "languages",
		Aliases:  []string{"l"},
		Value:    "",
		Usage:    "names or aliases of languages to report, comma delimited, all languages when empty",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "text-only",
		Value:    false,
		Usage:    "skip files with binary extensions",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking path against inclusion patterns",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "max-size",
		Value:    6,
		Usage:    "maximal file size, in MB",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "include-noise-dirs",
		Value:    false,
		Usage:    "don't filter out noisy directory names in paths (bin, node_modules etc)",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    runtime.NumCPU(),
		Usage:    "number of files counted concurrently",
		Required: false,
	},
}

type Options struct {
	ClonePath          string
	Revision           string
	OutputPath         string
	IncludePatterns    []string
	ExcludePatterns    []string
	Languages          []lang.Language
	VerboseLogging     bool
	TextFilesOnly      bool
	IgnoreCasePatterns bool
	MaxFileSizeBytes   int64
	IncludeNoiseDirs   bool
	Workers            int
	Table              *lang.Table
}

// LoadTable returns the language table selected by --definitions: the
// built-in table when the flag is empty, otherwise a table built from the file.
func LoadTable(c *cli.Context) (*lang.Table, error) {
	definitionsPath := c.String("definitions")
	if len(definitionsPath) == 0 {
		return lang.Default(), nil
	}
	defs, err := definitions.LoadFile(definitionsPath)
	if err != nil {
		return nil, util.WithCode(util.ERROR_BAD_DEFINITIONS, err)
	}
	table, err := lang.Build(defs)
	if err != nil {
		return nil, util.WithCode(util.ERROR_BAD_DEFINITIONS, err)
	}
	return table, nil
}

// ParseLanguages resolves every name with table.Parse.
func ParseLanguages(table *lang.Table, names []string) ([]lang.Language, error) {
	languages := make([]lang.Language, 0, len(names))
	for _, name := range names {
		l, err := table.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, util.WithCode(util.ERROR_UNKNOWN_LANGUAGE, err)
		}
		languages = append(languages, l)
	}
	return languages, nil
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	return strings.Split(flag, ",")
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		ClonePath:          c.String("src"),
		Revision:           c.String("rev"),
		OutputPath:         c.String("out"),
		IncludePatterns:    splitListFlag(c.String("include")),
		ExcludePatterns:    splitListFlag(c.String("exclude")),
		VerboseLogging:     c.Bool("verbose"),
		TextFilesOnly:      c.Bool("text-only"),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		MaxFileSizeBytes:   int64(c.Int("max-size")) * 1024 * 1024,
		IncludeNoiseDirs:   c.Bool("include-noise-dirs"),
		Workers:            c.Int("workers"),
	}

	table, err := LoadTable(c)
	if err != nil {
		return nil, err
	}
	opts.Table = table

	opts.Languages, err = ParseLanguages(table, splitListFlag(c.String("languages")))
	if err != nil {
		return nil, err
	}

	err = opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the paths of opts and fills in defaults.
func (opts *Options) Validate() error {
	err := validateDirectory(opts.ClonePath, false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_PATH,
			InternalError: fmt.Errorf("clone at '%v' is missing or invalid: %v", opts.ClonePath, err),
		}
	}

	err = validateDirectory(path.Join(opts.ClonePath, ".git"), false)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_PATH,
			InternalError: fmt.Errorf(".git at '%v' is missing or invalid: %v", opts.ClonePath, err),
		}
	}

	if opts.OutputPath != StdoutPath {
		err = validateDirectory(filepath.Dir(opts.OutputPath), true)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
				InternalError: err,
			}
		}
	}

	if len(opts.Revision) == 0 {
		opts.Revision = "HEAD"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Table == nil {
		opts.Table = lang.Default()
	}
	return nil
}
