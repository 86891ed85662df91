package main

import (
	"fmt"
	"io"

	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/braxtons12/C2nxt/std/result"
	"github.com/braxtons12/C2nxt/std/str"
	"github.com/braxtons12/C2nxt/std/vector"
	"github.com/spf13/cobra"
)

var growCount int

func init() {
	cmd := newGrowCmd()
	cmd.Flags().IntVarP(&growCount, "count", "n", 100, "Number of elements to push")
	rootCmd.AddCommand(cmd)
}

func newGrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grow",
		Short: "Trace how containers grow",
		Long: `The grow command pushes --count elements onto a Vector and bytes onto a
String and reports every capacity the containers passed through.

Example:
  nxtctl grow -n 1000
  NXTCTL_ALLOCATOR_KIND=limited NXTCTL_ALLOCATOR_BUDGET=256 nxtctl grow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
}

type growTrace struct {
	Length      int   `json:"length" yaml:"length"`
	Capacities  []int `json:"capacities" yaml:"capacities"`
	Allocations int   `json:"allocations,omitempty" yaml:"allocations,omitempty"`
}

type growResult struct {
	Vector growTrace `json:"vector" yaml:"vector"`
	String growTrace `json:"string" yaml:"string"`
}

func runGrow() error {
	if growCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", growCount)
	}

	res, err := result.AndThen(traceVector(growCount), func(vt growTrace) result.Result[growResult] {
		return result.Map(traceString(growCount), func(st growTrace) growResult {
			return growResult{Vector: vt, String: st}
		})
	}).Unpack()
	if err != nil {
		return err
	}

	return printResult(res, func(w io.Writer) {
		fmt.Fprintf(w, "vector: %d elements, %d allocations, capacities %v\n",
			res.Vector.Length, res.Vector.Allocations, res.Vector.Capacities)
		fmt.Fprintf(w, "string: %d bytes, capacities %v\n", res.String.Length, res.String.Capacities)
	})
}

// traceVector pushes n ints onto a tracked Vector and records each capacity.
func traceVector(n int) result.Result[growTrace] {
	tracked := alloc.NewTracking[int](nil)
	v, err := vector.New(vector.Options[int]{Allocator: tracked})
	if err != nil {
		return result.Err[growTrace](err)
	}
	defer v.Free()

	trace := growTrace{Capacities: []int{v.Cap()}}
	for i := range n {
		if err := v.PushBack(i); err != nil {
			return result.Err[growTrace](fmt.Errorf("vector push %d: %w", i, err))
		}
		trace.observe(v.Cap())
	}
	trace.Length = v.Len()
	trace.Allocations = tracked.Stats().Allocations
	return result.Ok(trace)
}

// traceString pushes n bytes onto a String served by the configured
// allocator and records each capacity.
func traceString(n int) result.Result[growTrace] {
	s := str.New(str.Options{Allocator: byteAlloc})
	defer s.Free()

	trace := growTrace{Capacities: []int{s.Cap()}}
	for i := range n {
		if err := s.PushBack('a' + byte(i%26)); err != nil {
			return result.Err[growTrace](fmt.Errorf("string push %d: %w", i, err))
		}
		trace.observe(s.Cap())
	}
	trace.Length = s.Len()
	return result.Ok(trace)
}

func (t *growTrace) observe(capacity int) {
	if capacity != t.Capacities[len(t.Capacities)-1] {
		t.Capacities = append(t.Capacities, capacity)
	}
}
