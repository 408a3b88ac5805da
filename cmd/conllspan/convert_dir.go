package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/conll"
	"github.com/revelaction/conllspan/storage"
	"github.com/revelaction/conllspan/storage/filesystem"
)

type ConvertDirOptions struct {
	DocPath   string
	Out       string
	Part      string
	NoMention bool
	KeepGoing bool
	NoBar     bool
}

func convertDirCmd(ui UI) *cli.Command {
	flags := append(convertFlags(),
		&cli.StringFlag{
			Name:    "doc-path",
			Usage:   "document repository, a directory or a SQLite file",
			EnvVars: []string{envDocPath},
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output directory (default: the document directory)",
		},
		&cli.BoolFlag{
			Name:  "keep-going",
			Usage: "skip malformed documents instead of stopping",
		},
		&cli.BoolFlag{
			Name:  "no-bar",
			Usage: "do not show the progress bar",
		},
	)

	return &cli.Command{
		Name:      "convert-dir",
		Usage:     "convert every document of a repository to CoNLL",
		ArgsUsage: "[dir]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			opts := ConvertDirOptions{
				DocPath:   c.String("doc-path"),
				Out:       c.String("out"),
				Part:      c.String("part"),
				NoMention: c.Bool("no-mention"),
				KeepGoing: c.Bool("keep-going"),
				NoBar:     c.Bool("no-bar"),
			}
			if c.NArg() > 0 {
				opts.DocPath = c.Args().Get(0)
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, opts.DocPath)
			if err != nil {
				return err
			}
			return convertDirCommand(repo, opts, ui)
		},
	}
}

func convertDirCommand(repo storage.DocReader, opts ConvertDirOptions, ui UI) error {
	out := opts.Out
	if out == "" {
		fs, ok := repo.(*filesystem.DocStore)
		if !ok {
			return fmt.Errorf("--out is required for a SQLite repository")
		}
		out = fs.Dir()
	}

	docs, err := repo.List()
	if err != nil {
		return err
	}

	bar, stop := startBar(len(docs), opts.NoBar, ui)
	defer stop()

	count, skipped := 0, 0
	for _, docMeta := range docs {
		err := convertDoc(repo, docMeta.Id, out, opts)
		if bar != nil {
			bar.Incr()
		}
		if err == nil {
			count++
			continue
		}

		if !opts.KeepGoing {
			return fmt.Errorf("%s: %w", docMeta.Title, err)
		}
		slog.Warn("skipping document", "title", docMeta.Title, "err", err)
		skipped++
	}

	fmt.Fprintf(ui.Out, "Converted %d docs to %s, skipped %d\n", count, out, skipped)
	return nil
}

func convertDoc(repo storage.DocReader, id int, out string, opts ConvertDirOptions) error {
	doc, err := repo.Read(id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := conll.NewWriter(&buf, writerOptions(opts.Part, opts.NoMention)...).WriteDoc(doc); err != nil {
		return err
	}

	target := filepath.Join(out, filepath.FromSlash(doc.Title)+conllExt)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", target, err)
	}

	slog.Debug("converted", "doc", doc.DocId, "target", target)
	return nil
}
