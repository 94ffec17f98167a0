package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/htx/format"
	"github.com/dhamidi/htx/html/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var maxDepth int
	var allowTextRoot bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a markup file and dump the resulting tree",
		Long:  "Parse a markup file (or stdin with \"-\") and dump the resulting tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, file, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			node, err := parser.New(data, parseOptions(file, maxDepth, allowTextRoot)...).Parse()
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum element nesting depth (0 disables the bound)")
	cmd.Flags().BoolVar(&allowTextRoot, "allow-text-root", false, "accept a bare text document as the root")

	return cmd
}

func parseOptions(file string, maxDepth int, allowTextRoot bool) []parser.Option {
	opts := []parser.Option{
		parser.WithFile(file),
		parser.WithMaxDepth(maxDepth),
	}
	if allowTextRoot {
		opts = append(opts, parser.AllowTextRoot())
	}
	return opts
}

func readInput(arg string) ([]byte, string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "", err
	}
	data, err := os.ReadFile(arg)
	return data, arg, err
}
