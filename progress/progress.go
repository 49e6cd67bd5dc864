// Package progress adapts the solver's statistics callback to structured
// logging with github.com/rs/zerolog.
//
// The default logger writes human-readable console output; pass any
// preconfigured zerolog.Logger to Logger to integrate with an application's
// logging setup. Disable returns a no-op callback for benchmarks and tests.
package progress

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tspbb/tsp"
)

var defaultLogger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	defaultLogger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		defaultLogger = zerolog.Nop()
	}
}

// SetOutput redirects the package-level logger.
func SetOutput(w io.Writer) {
	defaultLogger = defaultLogger.Output(w)
}

// Default returns a callback that logs through the package-level logger.
func Default() tsp.ProgressFunc {
	return Logger(defaultLogger)
}

// Logger returns a statistics callback that emits one structured event per
// report. Snapshots without an incumbent log at debug level; once a tour is
// known the event carries its cost at info level.
func Logger(l zerolog.Logger) tsp.ProgressFunc {
	return func(st tsp.Stats) {
		ev := l.Debug()
		if !math.IsInf(st.BestCost, 1) {
			ev = l.Info().Float64("bestCost", st.BestCost)
		}
		ev.Int64("explored", st.NodesExplored).
			Int64("pruned", st.BranchesPruned).
			Int("maxDepth", st.MaxDepth).
			Dur("elapsed", st.Elapsed).
			Msg("search progress")
	}
}

// Disable returns a callback that drops every snapshot.
func Disable() tsp.ProgressFunc {
	return Logger(zerolog.Nop())
}
