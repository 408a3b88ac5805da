package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// complete relies on the --generate-bash-completion flag of the app.
const complete = `#! /bin/bash

_conllspan_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ "$cur" == "-"* ]]; then
        opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
    else
        opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -o bashdefault -o default -F _conllspan_autocomplete conllspan
`

func bashCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "print the bash completion script",
		Action: func(c *cli.Context) error {
			return bashCommand(ui)
		},
	}
}

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
