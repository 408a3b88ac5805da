package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/storage"
	"github.com/revelaction/conllspan/storage/filesystem"
	"github.com/revelaction/conllspan/storage/sqlite/zombiezen"
)

type ImportDocOptions struct {
	From  string
	To    string
	NoBar bool
}

func importDocCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import-doc",
		Usage:     "import the JSON documents of a directory into a SQLite repository",
		ArgsUsage: "<dir> <db>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-bar", Usage: "do not show the progress bar"},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, ui); err != nil {
				return err
			}
			return importDocCommand(ImportDocOptions{
				From:  c.Args().Get(0),
				To:    c.Args().Get(1),
				NoBar: c.Bool("no-bar"),
			}, ui)
		},
	}
}

func importDocCommand(opts ImportDocOptions, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()
	pool, err := p.Open(opts.To)
	if err != nil {
		return err
	}
	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	bar, stop := startBar(len(docs), opts.NoBar, ui)
	defer stop()

	count, skipped := 0, 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		err = dst.Write(doc)
		switch {
		case errors.Is(err, storage.ErrDocExists):
			slog.Info("skipping duplicate document", "title", docMeta.Title)
			skipped++
		case err != nil:
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		default:
			count++
		}

		if bar != nil {
			bar.Incr()
		}
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s, skipped %d duplicates\n", count, opts.From, opts.To, skipped)
	return nil
}
