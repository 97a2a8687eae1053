// Command nrsort sorts the integers given on the command line with a
// non-recursive merge sort and prints them as a bracketed list.
//
//	$ nrsort 5 3 8 1
//	[1, 3, 5, 8]
//
// Every argument is an operand, so negative numbers need no escaping. Set
// NRSORT_LOG_LEVEL=debug to get a JSON trace of every merge pass on stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davidvella/nrsort/mergesort"
	"github.com/davidvella/nrsort/metrics"
	"github.com/davidvella/nrsort/monitoring"
)

const logLevelEnv = "NRSORT_LOG_LEVEL"

var (
	errNoArguments = errors.New("At least one parameter is required.")   //nolint:stylecheck // user facing message.
	errNotInt      = errors.New("Arguments given must be of type int.") //nolint:stylecheck // user facing message.
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv(logLevelEnv), os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, logLevel string, stdout, stderr io.Writer) int {
	logger := newLogger(ctx, logLevel, stderr)
	stats := monitoring.NewStats(metrics.NewRegistry(), logger)
	defer stats.Report(ctx)

	values, err := parseArgs(args)
	if err != nil {
		stats.RecordError(ctx, "invalid_arguments")
		logger.Log(ctx, monitoring.DEBUG, "invalid_arguments", err.Error(), map[string]any{
			"args": args,
		})
		fmt.Fprintln(stderr, userMessage(err))
		return 1
	}

	start := time.Now()
	sorted := mergesort.Sort(values, mergesort.WithObserver(func(p mergesort.Pass) {
		stats.Observe(ctx, p)
	}))
	stats.RecordSort(ctx, len(sorted), time.Since(start))

	fmt.Fprintln(stdout, format(sorted))
	return 0
}

func newLogger(ctx context.Context, level string, w io.Writer) *monitoring.Logger {
	if level == "" {
		return monitoring.NewLogger("nrsort", w, monitoring.WARN)
	}
	parsed, err := monitoring.ParseLevel(level)
	logger := monitoring.NewLogger("nrsort", w, parsed)
	if err != nil {
		logger.Log(ctx, monitoring.WARN, "invalid_config", "ignoring "+logLevelEnv, map[string]any{
			"error": err.Error(),
		})
	}
	return logger
}

// parseArgs converts every argument to a 32-bit signed integer.
func parseArgs(args []string) ([]int, error) {
	if len(args) < 1 {
		return nil, errNoArguments
	}

	values := make([]int, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", errNotInt, i+1, err)
		}
		values = append(values, int(v))
	}
	return values, nil
}

// userMessage maps a parse error to the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errNoArguments):
		return errNoArguments.Error()
	case errors.Is(err, errNotInt):
		return errNotInt.Error()
	default:
		return err.Error()
	}
}

// format renders values as "[e1, e2, ..., en]".
func format(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
