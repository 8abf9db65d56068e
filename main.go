package main

import (
	"errors"
	"langtypes/git"
	"langtypes/options"
	"langtypes/util"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

const exitCodesHelp = `
EXIT CODES:
  0    Success
  201  Clone path is invalid (fs-wise)
  202  Clone path is invalid (git-wise)
  203  Output path is invalid
  205  Provided revision could not be found
  208  Revision tree could not be read
  210  Language name or alias is unknown
  211  Definitions file is invalid
  212  Language table is inconsistent
  213  Definitions collide (check --strict)
  1    Any other error
`

func main() {
	cli.AppHelpTemplate += exitCodesHelp

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "langtypes",
		Usage:   "Classify programming languages by file extension or name, and count them in a git revision.",
		Flags:   options.GlobalFlags,
		Version: VERSION,
		Commands: []*cli.Command{
			{
				Name:      "ext",
				Usage:     "print the language of each file extension",
				ArgsUsage: "<extension>...",
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					lookupExtensions(os.Stdout, table, ctx.Args().Slice())
					return nil
				},
			},
			{
				Name:      "name",
				Usage:     "print the language of each name or alias",
				ArgsUsage: "<name>...",
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					lookupNames(os.Stdout, table, ctx.Args().Slice())
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "print the canonical name of a language, failing when it is unknown",
				ArgsUsage: "<name>",
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					return parseName(os.Stdout, table, ctx.Args().First())
				},
			},
			{
				Name:      "extensions",
				Usage:     "print the file extensions of a language",
				ArgsUsage: "<name>",
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					return printExtensions(os.Stdout, table, ctx.Args().First())
				},
			},
			{
				Name:  "list",
				Usage: "print every language with its identifier and extensions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Aliases:  []string{"f"},
						Value:    formatText,
						Usage:    "output format: text, json or yaml",
						Required: false,
					},
				},
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					return listLanguages(os.Stdout, table, ctx.String("format"))
				},
			},
			{
				Name:  "check",
				Usage: "verify that every language resolves from its canonical name and report colliding definitions",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:     "strict",
						Value:    false,
						Usage:    "fail when definitions collide",
						Required: false,
					},
				},
				Action: func(ctx *cli.Context) error {
					table, err := options.LoadTable(ctx)
					if err != nil {
						return err
					}
					err = checkTable(table, ctx.Bool("strict"))
					if err == nil {
						log.Printf("table of %v languages is consistent", table.Len())
					}
					return err
				},
			},
			{
				Name:  "scan",
				Usage: "count files and lines of code per language for a revision of an existing clone. Symbolic link files will be omitted.",
				Flags: options.ScanFlags,
				Action: func(ctx *cli.Context) error {
					opts, err := options.ParseOptions(ctx)
					if err != nil {
						return err
					}
					err = git.Run(opts)
					if err == nil {
						log.Printf("Completed successfully at %v", opts.OutputPath)
					}
					return err
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
