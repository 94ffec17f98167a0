package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/htx/html/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var maxDepth int
	var allowTextRoot bool

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse a markup file and report the first error",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, file, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			_, err = parser.New(data, parseOptions(file, maxDepth, allowTextRoot)...).Parse()
			if err == nil {
				return nil
			}

			var perr *parser.Error
			if errors.As(err, &perr) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", perr.Pos, perr.Message)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum element nesting depth (0 disables the bound)")
	cmd.Flags().BoolVar(&allowTextRoot, "allow-text-root", false, "accept a bare text document as the root")

	return cmd
}
