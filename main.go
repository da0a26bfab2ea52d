package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rexsat/rexsat/cnf"
	"github.com/rexsat/rexsat/parsers"
	"github.com/rexsat/rexsat/pattern"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzipped = flag.Bool(
	"gzip",
	false,
	"read the instance file as gzip-compressed DIMACS",
)

var flagPrintPattern = flag.Bool(
	"print_pattern",
	false,
	"print the generated pattern text",
)

var flagAssignment = flag.String(
	"assignment",
	"",
	"check a single F/T assignment instead of enumerating all of them",
)

var flagMatchTimeout = flag.Duration(
	"match_timeout",
	0,
	"maximum time a single match may spend backtracking (0 = no maximum)",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzipped,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		printPattern: *flagPrintPattern,
		assignment:   *flagAssignment,
		matchTimeout: *flagMatchTimeout,
	}, nil
}

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	printPattern bool
	assignment   string
	matchTimeout time.Duration
}

func checkerOptions(cfg *config) pattern.Options {
	options := pattern.DefaultOptions
	if cfg.matchTimeout > 0 {
		options.MatchTimeout = cfg.matchTimeout
	}
	return options
}

func run(cfg *config) error {
	formula, err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	checker, err := pattern.NewCheckerOptions(formula, checkerOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not build checker: %s", err)
	}

	fmt.Printf("c variables:  %d\n", formula.Variables)
	fmt.Printf("c clauses:    %d\n", len(formula.Clauses))
	if cfg.printPattern {
		fmt.Printf("c pattern:    %s\n", checker.Pattern())
	}

	if cfg.assignment != "" {
		return checkOne(checker, cfg.assignment)
	}
	return checkAll(checker, formula.Variables)
}

// checkOne classifies a single assignment given on the command line.
func checkOne(checker *pattern.Checker, assignment string) error {
	sat, err := checker.Check(assignment)
	if err != nil {
		return err
	}
	printResult(assignment, sat)
	return nil
}

// checkAll enumerates every assignment of the formula's variables and
// classifies each one by matching it against the compiled pattern.
func checkAll(checker *pattern.Checker, numVars int) error {
	enum, err := cnf.EnumerateAssignments(numVars)
	if err != nil {
		return err
	}

	t := time.Now()
	models := 0
	checked := 0
	for a, ok := enum.Next(); ok; a, ok = enum.Next() {
		sat, err := checker.Check(a)
		if err != nil {
			return err
		}
		if sat {
			models++
		}
		checked++
		printResult(a, sat)
	}
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c checked:    %d (%.2f /sec)\n", checked, float64(checked)/elapsed.Seconds())
	fmt.Printf("c models:     %d\n", models)
	return nil
}

func printResult(assignment string, sat bool) {
	if sat {
		fmt.Printf("%s\tSAT\n", assignment)
	} else {
		fmt.Printf("%s\tUNSAT\n", assignment)
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
