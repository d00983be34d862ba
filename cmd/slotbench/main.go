// Command slotbench runs the four read/insert/delete/update mixes of §6
// against both slotmap.Map and Go's builtin map, and prints a fixed-width
// throughput report. It is an external collaborator of the core (§1): it
// imports the package like any other client and times operations around
// its public API, never reaching into internals.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultN = 1_000_000

func usage() {
	fmt.Fprintln(os.Stderr, "usage: slotbench [N]")
	fmt.Fprintln(os.Stderr, "  N defaults to 1_000_000 and is the number of operations per mix.")
	fmt.Fprintln(os.Stderr, "  underscores in N are accepted as visual separators.")
}

// parseN parses the optional positional N argument, stripping underscores
// the way Go's own integer literals allow.
func parseN(arg string) (int, error) {
	cleaned := strings.ReplaceAll(arg, "_", "")
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid N %q: %w", arg, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("N must be positive, got %d", n)
	}
	return int(n), nil
}

func run() int {
	if len(os.Args) > 2 {
		usage()
		return 2
	}

	n := defaultN

	if len(os.Args) == 2 {
		arg := os.Args[1]
		if arg == "-h" || arg == "--help" {
			usage()
			return 0
		}

		parsed, err := parseN(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			return 2
		}
		n = parsed
	}

	rng := rand.New(rand.NewSource(1))

	var results []result

	for _, m := range mixes {
		ops := generateOps(m, n, rng)

		start := time.Now()
		runSlotmap(ops, rng)
		slotmapElapsed := time.Since(start)

		start = time.Now()
		runBuiltin(ops, rng)
		builtinElapsed := time.Since(start)

		results = append(results,
			result{impl: "slotmap", mixName: m.name, n: n, elapsed: slotmapElapsed},
			result{impl: "builtin", mixName: m.name, n: n, elapsed: builtinElapsed},
		)
	}

	writeReport(os.Stdout, results)

	return 0
}

func main() {
	os.Exit(run())
}
