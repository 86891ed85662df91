package main

import (
	"fmt"
	"io"

	"github.com/braxtons12/C2nxt/std/str"
	"github.com/braxtons12/C2nxt/std/strext"
	"github.com/spf13/cobra"
)

var (
	splitDelim string
	splitViews bool
)

func init() {
	cmd := newSplitCmd()
	cmd.Flags().StringVarP(&splitDelim, "delim", "d", ",", "Single-byte delimiter")
	cmd.Flags().BoolVar(&splitViews, "views", false, "Split into views instead of copies")
	rootCmd.AddCommand(cmd)
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <text>",
		Short: "Split a string on a delimiter",
		Long: `The split command breaks text into the non-empty segments between
delimiters.

Example:
  nxtctl split "a,b,,c"
  nxtctl split "usr/local/bin" -d / --views`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args)
		},
	}
}

type splitResult struct {
	Delimiter string   `json:"delimiter" yaml:"delimiter"`
	Parts     []string `json:"parts" yaml:"parts"`
}

func runSplit(args []string) error {
	if len(splitDelim) != 1 {
		return fmt.Errorf("delimiter must be a single byte, got %q", splitDelim)
	}
	s, err := str.From(args[0], str.Options{Allocator: byteAlloc})
	if err != nil {
		return fmt.Errorf("failed to build string: %w", err)
	}
	defer s.Free()

	res := splitResult{Delimiter: splitDelim, Parts: []string{}}
	if splitViews {
		views, err := strext.SplitViewsOn(s, splitDelim[0])
		if err != nil {
			return fmt.Errorf("failed to split: %w", err)
		}
		defer views.Free()
		for v := range views.Values() {
			res.Parts = append(res.Parts, v.String())
		}
	} else {
		parts, err := strext.SplitOn(s, splitDelim[0])
		if err != nil {
			return fmt.Errorf("failed to split: %w", err)
		}
		defer parts.Free()
		for p := range parts.Values() {
			res.Parts = append(res.Parts, p.String())
		}
	}
	printVerbose("Split into %d parts\n", len(res.Parts))

	return printResult(res, func(w io.Writer) {
		for i, p := range res.Parts {
			fmt.Fprintf(w, "%d: %s\n", i, p)
		}
	})
}
