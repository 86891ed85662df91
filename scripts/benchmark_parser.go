// Command benchmark_parser turns `go test -bench` output for the std
// packages into a markdown report comparing each allocator with the heap.
//
//	go test -run '^$' -bench . -benchmem ./std/... | go run ./scripts -output bench.md
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// baseline is the allocator every other allocator is compared with.
const baseline = "heap"

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Size        string
	Allocator   string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult compares one allocator with the baseline for an
// operation and size.
type ComparisonResult struct {
	Operation      string
	Size           string
	Allocator      string
	BaseNs         float64
	Ns             float64
	Speedup        float64 // BaseNs / Ns; > 1 means faster than the heap
	BaseMem        int64
	Mem            int64
	BaseAllocs     int64
	Allocs         int64
	MissingBaseRun bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, results, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkVector_PushBack/arena/1024-8    10000    12450 ns/op    4096 B/op    8 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+B/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Lines from `go test -json` carry the text in Output.
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp, allocsPerOp int64
		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, allocator, size := splitName(name)
		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Size:        size,
			Allocator:   allocator,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// splitName parses Benchmark<Operation>[/<allocator>[/<size>]][-<procs>].
// Benchmarks without an allocator level ran on the heap.
func splitName(name string) (operation, allocator, size string) {
	parts := strings.Split(strings.TrimPrefix(name, "Benchmark"), "/")

	last := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(last, "-"); dashIdx > 0 {
		if _, err := strconv.Atoi(last[dashIdx+1:]); err == nil {
			parts[len(parts)-1] = last[:dashIdx]
		}
	}

	operation, allocator = parts[0], baseline
	if len(parts) >= 2 {
		allocator = parts[1]
	}
	if len(parts) >= 3 {
		size = strings.Join(parts[2:], "/")
	}
	return operation, allocator, size
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, result := range results {
		k := key{result.Operation, result.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][result.Allocator] = result
	}

	var comparisons []ComparisonResult
	for k, allocators := range grouped {
		base, hasBase := allocators[baseline]
		for name, r := range allocators {
			if name == baseline {
				continue
			}
			comp := ComparisonResult{
				Operation:      k.operation,
				Size:           k.size,
				Allocator:      name,
				Ns:             r.NsPerOp,
				Mem:            r.BytesPerOp,
				Allocs:         r.AllocsPerOp,
				MissingBaseRun: !hasBase,
			}
			if hasBase {
				comp.BaseNs = base.NsPerOp
				comp.BaseMem = base.BytesPerOp
				comp.BaseAllocs = base.AllocsPerOp
				if r.NsPerOp > 0 {
					comp.Speedup = base.NsPerOp / r.NsPerOp
				}
			}
			comparisons = append(comparisons, comp)
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if a.Size != b.Size {
			return sizeLess(a.Size, b.Size)
		}
		return a.Allocator < b.Allocator
	})

	return comparisons
}

// sizeLess orders numeric sizes numerically and everything else lexically.
func sizeLess(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return x < y
	}
	return a < b
}

func generateMarkdownReport(comparisons []ComparisonResult, results []BenchmarkResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	faster, slower, unmatched := 0, 0, 0
	for _, comp := range comparisons {
		switch {
		case comp.MissingBaseRun:
			unmatched++
		case comp.Speedup > 1.0:
			faster++
		case comp.Speedup < 1.0:
			slower++
		}
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Benchmarks parsed**: %d\n", len(results))
	fmt.Fprintf(&sb, "- **Comparisons with %s**: %d\n", baseline, len(comparisons)-unmatched)
	fmt.Fprintf(&sb, "  - faster than %s: %d\n", baseline, faster)
	fmt.Fprintf(&sb, "  - slower than %s: %d\n", baseline, slower)
	if unmatched > 0 {
		fmt.Fprintf(&sb, "- **Without a %s run**: %d\n", baseline, unmatched)
	}
	sb.WriteString("\n")

	sb.WriteString("## Detailed Results\n\n")
	fmt.Fprintf(&sb, "| Operation | Size | Allocator | %s (ns/op) | ns/op | Speedup | Memory (B/op) | Allocs |\n", baseline)
	sb.WriteString("|-----------|------|-----------|------------|-------|---------|---------------|--------|\n")

	for _, comp := range comparisons {
		if comp.MissingBaseRun {
			fmt.Fprintf(&sb, "| %s | %s | %s | *N/A* | %s | *N/A* | %s | %s |\n",
				comp.Operation,
				comp.Size,
				comp.Allocator,
				formatNumber(comp.Ns),
				formatBytes(comp.Mem),
				formatNumber(float64(comp.Allocs)),
			)
			continue
		}

		indicator := "✓"
		if comp.Speedup < 1.0 {
			indicator = "✗"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %.2fx %s | %s vs %s | %s vs %s |\n",
			comp.Operation,
			comp.Size,
			comp.Allocator,
			formatNumber(comp.BaseNs),
			formatNumber(comp.Ns),
			comp.Speedup,
			indicator,
			formatBytes(comp.Mem),
			formatBytes(comp.BaseMem),
			formatNumber(float64(comp.Allocs)),
			formatNumber(float64(comp.BaseAllocs)),
		)
	}

	sb.WriteString("\n## Notes\n\n")
	fmt.Fprintf(&sb, "- **Speedup > 1.0**: faster than %s ✓\n", baseline)
	fmt.Fprintf(&sb, "- **Speedup < 1.0**: slower than %s ✗\n", baseline)
	sb.WriteString("- **Memory and allocations** count Go heap use only; page and arena memory is not reported\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
