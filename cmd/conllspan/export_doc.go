package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/storage/filesystem"
	"github.com/revelaction/conllspan/storage/sqlite/zombiezen"
)

type ExportDocOptions struct {
	From  string
	To    string
	NoBar bool
}

func exportDocCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "export-doc",
		Usage:     "export the documents of a SQLite repository as JSON files",
		ArgsUsage: "<db> <dir>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-bar", Usage: "do not show the progress bar"},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, ui); err != nil {
				return err
			}
			return exportDocCommand(ExportDocOptions{
				From:  c.Args().Get(0),
				To:    c.Args().Get(1),
				NoBar: c.Bool("no-bar"),
			}, ui)
		},
	}
}

func exportDocCommand(opts ExportDocOptions, ui UI) error {
	if _, err := os.Stat(opts.From); err != nil {
		return fmt.Errorf("repository not found: %s", opts.From)
	}

	p := &Pool{}
	defer p.Close()
	pool, err := p.Open(opts.From)
	if err != nil {
		return err
	}
	src := zombiezen.NewDocStore(pool)

	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(opts.To)
	if err != nil {
		return err
	}

	docs, err := src.List()
	if err != nil {
		return err
	}

	bar, stop := startBar(len(docs), opts.NoBar, ui)
	defer stop()

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			return err
		}
		count++

		if bar != nil {
			bar.Incr()
		}
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
