// perft counts leaf nodes of the legal-move tree to a fixed depth. The
// counts have known reference values for standard positions, so the
// tool doubles as a correctness check and a throughput benchmark for
// the move generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
	"github.com/VeeDeltaVee/knight-witch/internal/config"
	"github.com/VeeDeltaVee/knight-witch/internal/engine"
)

var (
	fenFlag     = flag.String("fen", "", "Position to count from, in FEN (default: the standard start)")
	diagramFlag = flag.String("diagram", "", "File holding a board diagram to count from instead of FEN")
	depthFlag   = flag.Int("depth", 0, "Count depth in plies (required)")
	divideFlag  = flag.Bool("divide", false, "Print per-root-move subtree counts")
	workersFlag = flag.Int("workers", 0, "Worker goroutines for the count (0 = single-threaded)")
	cpuprofile  = flag.String("cpuprofile", "", "Write a CPU profile to this file")
)

func main() {
	flag.Parse()

	if *depthFlag <= 0 {
		fmt.Fprintln(os.Stderr, "perft: -depth must be at least 1")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.NewConfig()
	cfg.Workers = *workersFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}

	p := loadPosition()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: create %s: %v\n", *cpuprofile, err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "perft: start profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *divideFlag {
		divide(os.Stdout, p, *depthFlag)
		return
	}

	start := time.Now()
	var nodes uint64
	if cfg.Workers > 0 {
		nodes = engine.ParallelPerft(p, *depthFlag, cfg.Workers)
	} else {
		nodes = engine.Perft(p, *depthFlag)
	}
	elapsed := time.Since(start)

	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("perft(%d) = %d in %v (%.0f nodes/s)\n",
		*depthFlag, nodes, elapsed.Round(time.Millisecond), nps)
}

// loadPosition builds the start position from -diagram or -fen, the
// diagram winning when both are given. Diagram positions have White to
// move and no castling rights, since a diagram cannot express either.
func loadPosition() *chess.Position {
	if *diagramFlag != "" {
		data, err := os.ReadFile(*diagramFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: read %s: %v\n", *diagramFlag, err)
			os.Exit(1)
		}
		p, err := chess.FromDiagram(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: parse %s: %v\n", *diagramFlag, err)
			os.Exit(1)
		}
		return p
	}

	if *fenFlag == "" {
		return chess.StartingPosition()
	}
	p, err := engine.PositionFromFEN(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: parse FEN %q: %v\n", *fenFlag, err)
		os.Exit(1)
	}
	return p
}

// divide prints each root move's subtree count in move-text order, the
// format generator debuggers diff against a reference engine.
func divide(w io.Writer, p *chess.Position, depth int) {
	counts := engine.PerftDivide(p, depth)

	moves := make([]string, 0, len(counts))
	for move := range counts {
		moves = append(moves, move)
	}
	sort.Strings(moves)

	var total uint64
	for _, move := range moves {
		fmt.Fprintf(w, "%s: %d\n", move, counts[move])
		total += counts[move]
	}
	fmt.Fprintf(w, "\nTotal: %d\n", total)
}
