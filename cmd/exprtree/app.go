// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"gitlab.com/fisherprime/exprtree"
	"gitlab.com/fisherprime/exprtree/batch"
)

// flag names
const (
	formatFlagName    = "format"
	linesFlagName     = "lines"
	workersFlagName   = "workers"
	cacheSizeFlagName = "cache-size"
	maxDepthFlagName  = "max-depth"
	maxLengthFlagName = "max-length"
	debugFlagName     = "debug"
)

// Output formats.
const (
	formatJSON   = "json"
	formatDump   = "dump"
	formatSource = "source"
)

// stdinName names the standard input source.
const stdinName = "-"

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

type (
	// jsonResult is the line-delimited JSON output of a parsed source.
	jsonResult struct {
		Name  string         `json:"name"`
		Exprs exprtree.Group `json:"exprs"`
		Rest  string         `json:"rest,omitempty"`
		Error string         `json:"error,omitempty"`
	}
)

// flags
var sourceFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  linesFlagName,
		Usage: "treat every non-blank input line as a separate source",
	},
	&cli.IntFlag{
		Name:  workersFlagName,
		Value: 8,
		Usage: "number of concurrent parses",
	},
	&cli.IntFlag{
		Name:  cacheSizeFlagName,
		Value: 256,
		Usage: "number of parse results cached by source text, 0 disables the cache",
	},
	&cli.IntFlag{
		Name:  maxDepthFlagName,
		Usage: "maximum group nesting, 0 for no limit",
	},
	&cli.IntFlag{
		Name:  maxLengthFlagName,
		Usage: "maximum source size in bytes, 0 for no limit",
	},
	&cli.BoolFlag{
		Name:  debugFlagName,
		Usage: "log debug output",
	},
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "exprtree",
		Usage:     "exprtree parses the textual rendering of structured data into expression trees.",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse sources & print their expression trees",
				ArgsUsage: "[file...]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  formatFlagName,
						Value: formatJSON,
						Usage: "output format: json, dump or source",
					},
				}, sourceFlags...),
				Action: parseAction,
			},
			{
				Name:      "levels",
				Usage:     "print the expression kinds found at each nesting level",
				ArgsUsage: "[file...]",
				Flags:     sourceFlags,
				Action:    levelsAction,
			},
		},
	}
}

func parseAction(c *cli.Context) error {
	format := c.String(formatFlagName)
	switch format {
	case formatJSON, formatDump, formatSource:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	results, err := process(c)
	if results == nil {
		return err
	}

	w := c.App.Writer
	encoder := json.NewEncoder(w)
	for _, resl := range results {
		var writeErr error
		switch format {
		case formatJSON:
			out := jsonResult{Name: resl.Name, Exprs: resl.Exprs, Rest: resl.Rest}
			if resl.Err != nil {
				out.Error = resl.Err.Error()
			}
			writeErr = encoder.Encode(out)
		case formatDump:
			if _, writeErr = fmt.Fprintf(w, "# %s\n", resl.Name); writeErr == nil {
				spew.Fdump(w, resl.Exprs)
			}
		case formatSource:
			_, writeErr = fmt.Fprintln(w, exprtree.Source(resl.Exprs))
		}

		if writeErr != nil {
			return writeErr
		}
	}

	return err
}

func levelsAction(c *cli.Context) error {
	results, err := process(c)
	if results == nil {
		return err
	}

	w := c.App.Writer
	for _, resl := range results {
		levels, levelErr := exprtree.ByLevel(c.Context, resl.Exprs)
		if levelErr != nil && !errors.Is(levelErr, exprtree.ErrNoExprs) {
			err = multierror.Append(err, fmt.Errorf("%s: %w", resl.Name, levelErr))
			continue
		}

		if _, writeErr := fmt.Fprintf(w, "# %s\n", resl.Name); writeErr != nil {
			return writeErr
		}
		for depth, level := range levels {
			kinds := make([]string, len(level))
			for index := range level {
				kinds[index] = level[index].Kind().String()
			}

			if _, writeErr := fmt.Fprintf(w, "%d: %s\n", depth, strings.Join(kinds, " ")); writeErr != nil {
				return writeErr
			}
		}
	}

	return err
}

// process reads the command's sources & parses them.
//
// Results are nil when no source could be read.
func process(c *cli.Context) (results []batch.Result, err error) {
	logger := newLogger(c)

	sources, err := readSources(c)
	if len(sources) < 1 {
		return
	}

	parser := exprtree.New(
		exprtree.WithLogger(logger),
		exprtree.WithDebug(c.Bool(debugFlagName)),
		exprtree.WithMaxDepth(c.Int(maxDepthFlagName)),
		exprtree.WithMaxLength(c.Int(maxLengthFlagName)),
	)

	processor, newErr := batch.New(
		batch.WithParser(parser),
		batch.WithLogger(logger),
		batch.WithDebug(c.Bool(debugFlagName)),
		batch.WithWorkers(c.Int(workersFlagName)),
		batch.WithCacheSize(c.Int(cacheSizeFlagName)),
	)
	if newErr != nil {
		err = newErr
		return
	}
	defer processor.Release()

	results, processErr := processor.Process(c.Context, sources)
	if processErr != nil {
		err = multierror.Append(err, processErr)
	}

	if c.Bool(debugFlagName) {
		logger.Debugf("processed %d sources: %+v", len(sources), processor.Stats())
	}

	return
}

// readSources reads the files named by the arguments, or stdin without arguments.
func readSources(c *cli.Context) (sources []batch.Source, err error) {
	names := c.Args().Slice()
	if len(names) < 1 {
		names = []string{stdinName}
	}

	var errs *multierror.Error
	for _, name := range names {
		read, readErr := readSource(c, name)
		if readErr != nil {
			errs = multierror.Append(errs, readErr)
			continue
		}

		sources = append(sources, read...)
	}
	err = errs.ErrorOrNil()

	return
}

func readSource(c *cli.Context, name string) (sources []batch.Source, err error) {
	if name == stdinName {
		return batch.ReadSources(name, c.App.Reader, c.Bool(linesFlagName))
	}

	f, err := os.Open(name)
	if err != nil {
		return
	}
	defer f.Close()

	return batch.ReadSources(name, f, c.Bool(linesFlagName))
}

func newLogger(c *cli.Context) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(c.App.ErrWriter)

	if c.Bool(debugFlagName) {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
