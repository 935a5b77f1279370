package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sansecio/rx/ast"
	"github.com/sansecio/rx/cmd/internal"
	"github.com/sansecio/rx/parser"
	"github.com/sansecio/rx/render"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file (profiles parsing and rendering)")
	rounds     = flag.Int("n", 100, "number of passes over the corpus")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: parse-bench [-n rounds] [-cpuprofile file] <corpus>\n")
		os.Exit(1)
	}

	entries, err := internal.ReadCorpus(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}

	p, err := parser.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building parser: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Benchmarking %d descriptions x %d rounds\n\n", len(entries), *rounds)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	// Parse
	var exprs []ast.Expr
	var failed int
	start := time.Now()
	for i := 0; i < *rounds; i++ {
		exprs = exprs[:0]
		for _, e := range entries {
			expr, err := p.Parse(e.Source)
			if err != nil {
				if i == 0 {
					failed++
				}
				continue
			}
			exprs = append(exprs, expr)
		}
	}
	parseDuration := time.Since(start)

	fmt.Printf("parse:  %v (%d failed)\n", parseDuration, failed)

	// Render
	for _, info := range render.List() {
		start = time.Now()
		for i := 0; i < *rounds; i++ {
			for _, expr := range exprs {
				_, _ = info.Renderer.Render(expr)
			}
		}
		fmt.Printf("%-6s  %v\n", info.Name+":", time.Since(start))
	}

	if n := len(entries) * *rounds; n > 0 {
		fmt.Printf("\nper description: %v parse\n", parseDuration/time.Duration(n))
	}
}
