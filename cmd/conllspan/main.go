package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/logging"
)

const (
	envDocPath   = "CONLLSPAN_DOC_PATH"
	envRules     = "CONLLSPAN_RULES"
	envLogLevel  = "CONLLSPAN_LOG_LEVEL"
	envLogFormat = "CONLLSPAN_LOG_FORMAT"
)

var errMissingArgs = errors.New("missing arguments")

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// a missing .env is fine
	_ = godotenv.Load()

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "conllspan: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "conllspan",
		Usage:                "convert CoreNLP documents to CoNLL and score bracketed spans",
		EnableBashCompletion: true,
		HideVersion:          true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{envLogLevel},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				EnvVars: []string{envLogFormat},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logging.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(c.String("log-format"))
			if err != nil {
				return err
			}
			logging.Init(ui.Err, level, format)
			return nil
		},
		Commands: []*cli.Command{
			convertCmd(ui),
			convertDirCmd(ui),
			scoreCmd(ui),
			missedCmd(ui),
			statCmd(ui),
			lsDocCmd(ui),
			importDocCmd(ui),
			exportDocCmd(ui),
			bashCmd(ui),
			versionCmd(ui),
		},
	}
}

// requireArgs prints the usage of the current command when it has less than
// n arguments.
func requireArgs(c *cli.Context, n int, ui UI) error {
	if c.NArg() >= n {
		return nil
	}

	fmt.Fprintf(ui.Err, "Usage: conllspan %s [options] %s\n\n%s\n", c.Command.Name, c.Command.ArgsUsage, c.Command.Usage)
	for _, f := range c.Command.Flags {
		fmt.Fprintf(ui.Err, "   %s\n", f.String())
	}

	return fmt.Errorf("%w: %s", errMissingArgs, c.Command.Name)
}
