package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/conllspan/sentence"
	"github.com/revelaction/conllspan/stat"
	"github.com/revelaction/conllspan/storage"
	"github.com/revelaction/conllspan/storage/filesystem"
)

type StatOptions struct {
	DocPath string
	// Doc restricts the statistics to one document, nil = all
	Doc *int
}

func statCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print statistics of a document, a directory or a SQLite repository",
		ArgsUsage: "[source]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "doc-path",
				Usage:   "document repository, a directory or a SQLite file",
				EnvVars: []string{envDocPath},
			},
			&cli.IntFlag{
				Name:  "doc",
				Usage: "only the document with this id",
			},
		},
		Action: func(c *cli.Context) error {
			opts := StatOptions{DocPath: c.String("doc-path")}
			if c.NArg() > 0 {
				opts.DocPath = c.Args().Get(0)
			}
			if c.IsSet("doc") {
				id := c.Int("doc")
				opts.Doc = &id
			}

			// a single document file
			if info, err := os.Stat(opts.DocPath); err == nil && !info.IsDir() && filesystem.IsDocFile(info.Name()) {
				doc, err := filesystem.ReadDoc(opts.DocPath)
				if err != nil {
					return err
				}
				return printStats(aggregate([]sent.Doc{doc}), ui)
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, opts.DocPath)
			if err != nil {
				return err
			}
			return statCommand(repo, opts, ui)
		},
	}
}

func statCommand(repo storage.DocReader, opts StatOptions, ui UI) error {
	if opts.Doc != nil {
		doc, err := repo.Read(*opts.Doc)
		if err != nil {
			return err
		}
		return printStats(aggregate([]sent.Doc{doc}), ui)
	}

	docs, err := repo.List()
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, docMeta := range docs {
		doc, err := repo.Read(docMeta.Id)
		if err != nil {
			return err
		}
		hdl.Aggregate(doc)
	}

	return printStats(hdl.Get(), ui)
}

func aggregate(docs []sent.Doc) stat.Stats {
	hdl := stat.NewHandler()
	for _, doc := range docs {
		hdl.Aggregate(doc)
	}
	return hdl.Get()
}

func printStats(stats stat.Stats, ui UI) error {
	fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, num tokens %d\n", stats.NumDocs, stats.NumSentences, stats.NumTokens)
	fmt.Fprintf(ui.Out, "Num tokens per sentence %d\n", stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num clusters %d, num mentions %d, num singleton mentions %d\n", stats.NumClusters, stats.NumMentions, stats.NumSingletonMentions)

	labels := make([]string, 0, len(stats.NumEntities))
	for l := range stats.NumEntities {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Fprintf(ui.Out, "🏷  %-12s %d\n", l, stats.NumEntities[l])
	}

	lengths := make([]int, 0, len(stats.TokensPerSentenceDis))
	for n := range stats.TokensPerSentenceDis {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	for _, n := range lengths {
		fmt.Fprintf(ui.Out, "%4d tokens: %d\n", n, stats.TokensPerSentenceDis[n])
	}

	return nil
}
