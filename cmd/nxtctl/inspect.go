package main

import (
	"fmt"
	"io"

	"github.com/braxtons12/C2nxt/std/str"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
)

var inspectLatin1 bool

func init() {
	cmd := newInspectCmd()
	cmd.Flags().BoolVar(&inspectLatin1, "latin1", false, "Decode the argument bytes as Windows-1252 first")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>",
		Short: "Show how a string is stored",
		Long: `The inspect command builds a String from the argument and reports its
length, capacity and whether it is stored inline (short) or on the allocator
(long).

Example:
  nxtctl inspect "hello"
  nxtctl inspect "a string that is too long to be stored inline" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

type inspectResult struct {
	Text           string `json:"text" yaml:"text"`
	Length         int    `json:"length" yaml:"length"`
	Capacity       int    `json:"capacity" yaml:"capacity"`
	Representation string `json:"representation" yaml:"representation"`
	UTF16Units     int    `json:"utf16_units" yaml:"utf16_units"`
}

func runInspect(args []string) error {
	var (
		s   *str.String
		err error
	)
	opts := str.Options{Allocator: byteAlloc}
	if inspectLatin1 {
		s, err = str.Decode([]byte(args[0]), charmap.Windows1252, opts)
	} else {
		s, err = str.From(args[0], opts)
	}
	if err != nil {
		return fmt.Errorf("failed to build string: %w", err)
	}
	defer s.Free()

	units, err := s.UTF16()
	if err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}

	res := inspectResult{
		Text:           s.String(),
		Length:         s.Len(),
		Capacity:       s.Cap(),
		Representation: representation(s),
		UTF16Units:     len(units),
	}
	printVerbose("Inspecting %d bytes\n", res.Length)
	return printResult(res, func(w io.Writer) {
		fmt.Fprintf(w, "text:           %q\n", res.Text)
		fmt.Fprintf(w, "length:         %d\n", res.Length)
		fmt.Fprintf(w, "capacity:       %d\n", res.Capacity)
		fmt.Fprintf(w, "representation: %s\n", res.Representation)
		fmt.Fprintf(w, "utf16 units:    %d\n", res.UTF16Units)
	})
}

func representation(s *str.String) string {
	if s.IsShort() {
		return "short"
	}
	return "long"
}
