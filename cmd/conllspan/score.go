package main

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/conll"
	"github.com/revelaction/conllspan/render"
	"github.com/revelaction/conllspan/score"
)

type ScoreOptions struct {
	Pred   string
	Gold   string
	Column string
	Format string
	Missed bool
	Color  bool
}

func scoreCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "score the bracketed spans of a predicted CoNLL file against a gold file",
		ArgsUsage: "<pred> <gold>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "column",
				Value: conll.ParseColumn.Name,
				Usage: "span column: parse, coref or ner",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: render.FormatText,
				Usage: "text or json",
			},
			&cli.BoolFlag{
				Name:  "missed",
				Usage: "list the gold spans missing in the prediction",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "color the text output",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, ui); err != nil {
				return err
			}
			opts := ScoreOptions{
				Pred:   c.Args().Get(0),
				Gold:   c.Args().Get(1),
				Column: c.String("column"),
				Format: c.String("format"),
				Missed: c.Bool("missed"),
				Color:  c.Bool("color"),
			}
			return scoreCommand(opts, ui)
		},
	}
}

func scoreCommand(opts ScoreOptions, ui UI) error {
	column, err := conll.ColumnByName(opts.Column)
	if err != nil {
		return err
	}

	r, err := render.New(opts.Format, ui.Out)
	if err != nil {
		return err
	}
	switch v := r.(type) {
	case *render.TextRenderer:
		v.ShowMissed = opts.Missed
		v.HasColor = opts.Color
	case *render.JSONRenderer:
		v.ShowMissed = opts.Missed
	}

	_, pred, err := conll.SpansFile(opts.Pred, column)
	if err != nil {
		return err
	}

	_, gold, err := conll.SpansFile(opts.Gold, column)
	if err != nil {
		return err
	}

	res := score.Compare(pred, gold)
	if !res.Defined() {
		slog.Warn("empty span set, metrics default to 0", "predicted", res.NumPredicted, "gold", res.NumGold)
	}

	return r.Score(res)
}
