package main

import (
	"fmt"
	"io"

	"github.com/braxtons12/C2nxt/std/str"
	"github.com/braxtons12/C2nxt/std/strext"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <text> <needle>",
		Short: "Search a string for a substring",
		Long: `The find command reports the first and last position of needle in text
and every (possibly overlapping) occurrence.

Example:
  nxtctl find "This is a test test test" test`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
}

type findResult struct {
	Needle      string `json:"needle" yaml:"needle"`
	First       *int   `json:"first" yaml:"first"`
	Last        *int   `json:"last" yaml:"last"`
	Occurrences []int  `json:"occurrences" yaml:"occurrences"`
}

func runFind(args []string) error {
	s, err := str.From(args[0], str.Options{Allocator: byteAlloc})
	if err != nil {
		return fmt.Errorf("failed to build string: %w", err)
	}
	defer s.Free()

	needle := str.ViewOf(args[1])
	found, err := strext.FindOccurrencesOf(s, needle)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}
	defer found.Free()

	res := findResult{Needle: args[1], Occurrences: append([]int{}, found.Data()...)}
	if i, ok := s.FindFirstView(needle).Get(); ok {
		res.First = &i
	}
	if i, ok := s.FindLastView(needle).Get(); ok {
		res.Last = &i
	}

	return printResult(res, func(w io.Writer) {
		if res.First == nil {
			fmt.Fprintf(w, "%q not found\n", res.Needle)
			return
		}
		fmt.Fprintf(w, "first:       %d\n", *res.First)
		fmt.Fprintf(w, "last:        %d\n", *res.Last)
		fmt.Fprintf(w, "occurrences: %v\n", res.Occurrences)
	})
}
