package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/config"
	"github.com/pseudomuto/flakefmt/pkg/consts"
	"github.com/pseudomuto/flakefmt/pkg/format"
	"github.com/pseudomuto/flakefmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

// stdinName is reported for standard input in list and check mode.
const stdinName = "<stdin>"

type (
	fmtOptions struct {
		write bool
		list  bool
		check bool
	}

	// fileFormatter formats the inputs of a single fmt invocation and tracks the
	// ones whose content changed.
	fileFormatter struct {
		parser      *parser.Parser
		formatter   *format.Formatter
		config      *config.Config
		opts        fmtOptions
		out         io.Writer
		unformatted []string
	}
)

// fmtCmd creates a CLI command for formatting Snowflake SQL files. This command
// provides gofmt-like functionality for SQL files, allowing users to format
// individual files, entire directory trees or standard input.
//
// Output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place when their content changes
//   - List mode (-l flag): Names of files whose formatting differs are printed
//   - Check mode (--check flag): The command fails when any file is not formatted
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively format every file with a configured extension
//     (".sql" by default) in lexical order, skipping excluded paths
//   - "-": Read from standard input and write to standard output
//
// Examples:
//
//	# Format single file to stdout
//	flakefmt fmt models/users.sql
//
//	# Format all SQL files in a directory tree in-place
//	flakefmt fmt -w models/
//
//	# Fail in CI when anything needs formatting
//	flakefmt fmt --check models/
func fmtCmd(p *parser.Parser) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path|->",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Fail when any file is not formatted",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on statements that cannot be formatted instead of dropping them",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the flakefmt config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.DefaultConfigFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			cfg, err := config.Load(cmd.String("config"), cmd.IsSet("config"))
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			ff := &fileFormatter{
				parser: p,
				formatter: format.New(format.FormatterOptions{
					IndentSize: cfg.Indent,
					Strict:     cfg.Strict || cmd.Bool("strict"),
				}),
				config: cfg,
				opts: fmtOptions{
					write: cmd.Bool("write"),
					list:  cmd.Bool("list"),
					check: cmd.Bool("check"),
				},
				out: cmd.Root().Writer,
			}

			if path := cmd.Args().First(); path != "-" {
				err = ff.formatPath(path)
			} else {
				err = ff.formatStdin(cmd.Root().Reader)
			}
			if err != nil {
				return err
			}

			return ff.result()
		},
	}
}

// formatPath handles formatting of either a single file or directory recursively.
func (ff *fileFormatter) formatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return ff.formatDirectory(path)
	}

	return ff.formatFile(path)
}

// formatDirectory recursively walks through a directory and formats all files
// with a configured extension. Files are processed in lexical order.
func (ff *fileFormatter) formatDirectory(dir string) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if rel != "." && ff.config.Excluded(rel) {
			slog.Debug("Skipping excluded path", "path", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() && ff.config.HasExtension(d.Name()) {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := ff.formatFile(sqlFile); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and either writes to stdout or back to
// the file.
func (ff *fileFormatter) formatFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := ff.format(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	return ff.emit(path, string(content), formatted, func(s string) error {
		if err := os.WriteFile(path, []byte(s), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	})
}

func (ff *fileFormatter) formatStdin(r io.Reader) error {
	if ff.opts.write {
		return errors.New("cannot write result back to standard input")
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read standard input")
	}

	formatted, err := ff.format(string(content))
	if err != nil {
		return errors.Wrap(err, "failed to format SQL from standard input")
	}

	return ff.emit(stdinName, string(content), formatted, nil)
}

func (ff *fileFormatter) format(text string) (string, error) {
	doc, err := ff.parser.Parse(text)
	if err != nil {
		return "", err
	}

	return ff.formatter.String(doc)
}

// emit handles the formatted content of one input according to the output
// mode. write is only called in write mode and only when the content changed.
func (ff *fileFormatter) emit(name, original, formatted string, write func(string) error) error {
	changed := original != formatted
	slog.Debug("Formatted input", "path", name, "changed", changed)

	if changed && (ff.opts.list || ff.opts.check) {
		ff.unformatted = append(ff.unformatted, name)
		if ff.opts.list {
			if _, err := fmt.Fprintln(ff.out, name); err != nil {
				return errors.Wrap(err, "failed to write file name to output")
			}
		}
	}

	switch {
	case ff.opts.write:
		if changed && write != nil {
			return write(formatted)
		}
	case !ff.opts.list && !ff.opts.check:
		if _, err := fmt.Fprint(ff.out, formatted); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}

// result fails check mode when any input was not formatted.
func (ff *fileFormatter) result() error {
	if !ff.opts.check || len(ff.unformatted) == 0 {
		return nil
	}

	for _, name := range ff.unformatted {
		slog.Warn("File is not formatted", "path", name)
	}

	return errors.Errorf("%d file(s) are not formatted", len(ff.unformatted))
}
