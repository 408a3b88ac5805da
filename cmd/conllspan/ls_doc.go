package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/storage"
)

func lsDocCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "ls-doc",
		Usage:     "list the documents of a repository",
		ArgsUsage: "[repository]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "doc-path",
				Usage:   "document repository, a directory or a SQLite file",
				EnvVars: []string{envDocPath},
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("doc-path")
			if c.NArg() > 0 {
				path = c.Args().Get(0)
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, path)
			if err != nil {
				return err
			}
			return lsDocCommand(repo, ui)
		},
	}
}

func lsDocCommand(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}

	return nil
}
