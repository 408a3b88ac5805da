package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllspan/browse"
	"github.com/revelaction/conllspan/conll"
	"github.com/revelaction/conllspan/missed"
	"github.com/revelaction/conllspan/render"
	"github.com/revelaction/conllspan/score"
)

type MissedOptions struct {
	Pred        string
	Gold        string
	Rules       string
	Window      int
	Format      string
	Color       bool
	Interactive bool
}

func missedCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "missed",
		Usage:     "report the gold coreference mentions missing in a prediction",
		ArgsUsage: "<pred> <gold>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rules",
				Usage:   "YAML file naming the rule logs (default: the logs in ./logs)",
				EnvVars: []string{envRules},
			},
			&cli.IntFlag{
				Name:  "window",
				Value: missed.DefaultWindow,
				Usage: "lines of context around a mention",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: render.FormatText,
				Usage: "text or json",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "color the text output",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "browse the report in a prompt",
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2, ui); err != nil {
				return err
			}
			opts := MissedOptions{
				Pred:        c.Args().Get(0),
				Gold:        c.Args().Get(1),
				Rules:       c.String("rules"),
				Window:      c.Int("window"),
				Format:      c.String("format"),
				Color:       c.Bool("color"),
				Interactive: c.Bool("interactive"),
			}
			return missedCommand(opts, ui)
		},
	}
}

func missedCommand(opts MissedOptions, ui UI) error {
	cfg := missed.DefaultConfig()
	if opts.Rules != "" {
		var err error
		cfg, err = missed.LoadConfig(opts.Rules)
		if err != nil {
			return err
		}
	}

	_, pred, err := conll.SpansFile(opts.Pred, conll.CorefColumn)
	if err != nil {
		return err
	}

	lines, gold, err := conll.SpansFile(opts.Gold, conll.CorefColumn)
	if err != nil {
		return err
	}

	res := score.Compare(pred, gold)

	rep, err := missed.Analyze(lines, res.Missed, opts.Window)
	if err != nil {
		return err
	}

	if err := rep.Annotate(cfg); err != nil {
		return err
	}

	if opts.Interactive {
		tr := render.NewTextRenderer(ui.Out)
		tr.HasColor = true
		return browse.NewHandler(rep, tr, ui.Out).Run()
	}

	r, err := render.New(opts.Format, ui.Out)
	if err != nil {
		return err
	}
	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = opts.Color
	}

	return r.Report(rep)
}
