package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/conll"
	"github.com/revelaction/conllspan/storage/filesystem"
)

const conllExt = ".conll"

type ConvertOptions struct {
	Source    string
	Target    string
	Part      string
	NoMention bool
}

func writerOptions(part string, noMention bool) []conll.Option {
	opts := []conll.Option{conll.WithPart(part)}
	if noMention {
		opts = append(opts, conll.WithoutMentions())
	}
	return opts
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "part",
			Value: conll.DefaultPart,
			Usage: "part number of the document header",
		},
		&cli.BoolFlag{
			Name:  "no-mention",
			Usage: "write - in the coreference column",
		},
	}
}

func convertCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a CoreNLP JSON document to CoNLL",
		ArgsUsage: "<json> [target]",
		Flags:     convertFlags(),
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, ui); err != nil {
				return err
			}
			opts := ConvertOptions{
				Source:    c.Args().Get(0),
				Target:    c.Args().Get(1),
				Part:      c.String("part"),
				NoMention: c.Bool("no-mention"),
			}
			return convertCommand(opts, ui)
		},
	}
}

func convertCommand(opts ConvertOptions, ui UI) error {
	doc, err := filesystem.ReadDoc(opts.Source)
	if err != nil {
		return err
	}

	target := opts.Target
	if target == "" {
		target = opts.Source + conllExt
		fmt.Fprintf(ui.Err, "target_file = %s\n", target)
	}

	// nothing is written for a malformed document
	var buf bytes.Buffer
	if err := conll.NewWriter(&buf, writerOptions(opts.Part, opts.NoMention)...).WriteDoc(doc); err != nil {
		return err
	}

	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", target, err)
	}

	return nil
}
