package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/gitdeck/internal/gitsim"
)

func newResolveCmd() *cobra.Command {
	var tableOnly bool
	cmd := &cobra.Command{
		Use:   "resolve [--table] <command...>",
		Short: "Print the simulated output of a command",
		Example: `  gitdeck resolve git status
  gitdeck resolve git log --oneline
  gitdeck resolve --table git branch -a
  gitdeck resolve 'git commit -m "first"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := gitsim.New()
			input := strings.Join(args, " ")
			res := r.Resolve(input)
			if tableOnly {
				res = r.Lookup(input)
			}
			if !res.Recognized {
				fmt.Fprintln(cmd.ErrOrStderr(), gitsim.NotRecognized)
				return &exitError{code: 2}
			}
			if res.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tableOnly, "table", false, "look up the static table only, as the demo tab does")
	// Options after the first word belong to the simulated command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the simulator knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, c := range gitsim.New().Commands() {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
}
