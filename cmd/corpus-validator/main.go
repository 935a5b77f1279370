package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sansecio/rx"
	"github.com/sansecio/rx/cmd/internal"
	"github.com/sansecio/rx/render"
)

var verbose = flag.Bool("v", false, "print every failure")

// failure is one description that did not convert or did not compile.
type failure struct {
	entry   internal.Entry
	dialect string
	stage   string
	err     error
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: corpus-validator [-v] <corpus>\n")
		os.Exit(1)
	}

	entries, err := internal.ReadCorpus(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}

	var (
		failures    []failure
		unsupported = make(map[string]int)
		perDialect  = make(map[string]int)
	)

	for _, e := range entries {
		expr, err := rx.Parse(e.Source)
		if err != nil {
			failures = append(failures, failure{entry: e, stage: "parse", err: err})
			continue
		}

		for _, info := range render.List() {
			if info.Name == "debug" {
				continue
			}
			out, err := info.Renderer.Render(expr)
			if err != nil {
				var fe *render.FeatureNotSupportedError
				if errors.As(err, &fe) {
					unsupported[info.Name+": "+fe.Feature]++
					continue
				}
				failures = append(failures, failure{entry: e, dialect: info.Name, stage: "render", err: err})
				perDialect[info.Name]++
				continue
			}
			if err := internal.CompileCheck(info.Name, out); err != nil {
				failures = append(failures, failure{entry: e, dialect: info.Name, stage: "compile", err: err})
				perDialect[info.Name]++
			}
		}
	}

	fmt.Printf("Descriptions: %d, failures: %d, unsupported: %d\n",
		len(entries), len(failures), internal.SumValues(unsupported))

	if len(unsupported) > 0 {
		fmt.Printf("\nUnsupported features:\n")
		for _, k := range internal.SortByCount(unsupported) {
			fmt.Printf("  %5d  %s\n", unsupported[k], k)
		}
	}

	if len(perDialect) > 0 {
		fmt.Printf("\nFailures by dialect:\n")
		for _, k := range internal.SortByCount(perDialect) {
			fmt.Printf("  %5d  %s\n", perDialect[k], k)
		}
	}

	if *verbose {
		for _, f := range failures {
			fmt.Printf("\nline %d [%s %s]: %s\n  %v\n", f.entry.Line, f.dialect, f.stage, f.entry.Source, f.err)
		}
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
