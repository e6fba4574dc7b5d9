package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-i2p/timeconv/lib/util"
	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/signals"
	"github.com/go-i2p/timeconv/lib/util/time/monotonic"
	"github.com/go-i2p/timeconv/lib/util/time/skew"
	"github.com/go-i2p/timeconv/lib/util/time/unixtime"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var errBackwardJumps = errors.New("backward time jumps observed")

// watchStats summarises one watch run.
type watchStats struct {
	Observations int
	Backward     int
	Invalid      int
	Skewed       int
}

func (s watchStats) String() string {
	return fmt.Sprintf("observations=%d backward=%d invalid=%d skewed=%d",
		s.Observations, s.Backward, s.Invalid, s.Skewed)
}

// watcher feeds observations through a guard and reports each one.
type watcher struct {
	guard     monotonic.Checker
	validator *skew.Validator
	unit      unixtime.Unit
	out       io.Writer
	stats     watchStats
}

func (a *app) watchCommand() *cobra.Command {
	var (
		maxSkew        time.Duration
		failOnBackward bool
	)
	cmd := &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Report backward jumps in a stream of timestamps",
		Long: "Read one timestamp per line from FILE or stdin, either an integer in " +
			"--unit or ISO8601, and report every observation that is earlier than " +
			"the one before it. Blank lines and lines starting with # are skipped. " +
			"SIGHUP resets the guard; SIGINT/SIGTERM stop reading.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-skew") {
				maxSkew = a.cfg.Watch.MaxSkew
			}
			if !cmd.Flags().Changed("fail-on-backward") {
				failOnBackward = a.cfg.Watch.FailOnBackward
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return oops.In("watch").With("path", args[0]).Wrapf(err, "could not open input")
				}
				in = f
			}

			w := &watcher{
				guard: monotonic.NewSyncGuard(),
				unit:  a.cfg.Unit,
				out:   cmd.OutOrStdout(),
			}
			if maxSkew > 0 {
				v, err := skew.NewValidator(a.clock, maxSkew)
				if err != nil {
					return err
				}
				w.validator = v
			}

			var interrupted atomic.Bool
			if c, ok := in.(io.Closer); ok {
				util.RegisterCloser(c)
			}
			interruptID := signals.RegisterInterruptHandler(func() {
				interrupted.Store(true)
				util.CloseAll()
			})
			reloadID := signals.RegisterReloadHandler(func() {
				log.WithField("at", "watch").Info("resetting guard on SIGHUP")
				w.guard.Reset()
			})
			defer signals.DeregisterInterruptHandler(interruptID)
			defer signals.DeregisterReloadHandler(reloadID)

			err := w.run(in)
			util.CloseAll()
			if err != nil && !interrupted.Load() {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), w.stats)
			if failOnBackward && w.stats.Backward > 0 {
				return oops.
					Code("backward_jump").
					In("watch").
					With("count", w.stats.Backward).
					Wrapf(errBackwardJumps, "%d backward jumps", w.stats.Backward)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&maxSkew, "max-skew", 0, "flag observations further than this from the local clock (0 disables)")
	cmd.Flags().BoolVar(&failOnBackward, "fail-on-backward", false, "exit with status 2 if any backward jump was seen")
	return cmd
}

// run consumes r line by line until EOF.
func (w *watcher) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w.observe(line, text)
	}
	if err := scanner.Err(); err != nil {
		return oops.In("watch").With("line", line).Wrapf(err, "reading observations")
	}
	return nil
}

// observe prints one line per observation:
// LINE<TAB>TIMESTAMP<TAB>DELTA<TAB>STATUS
func (w *watcher) observe(line int, text string) {
	t, err := parseObservation(text, w.unit)
	if err != nil {
		w.stats.Invalid++
		log.WithError(err).WithFields(logger.Fields{
			"at":   "watch",
			"line": line,
		}).Warn("skipping invalid observation")
		fmt.Fprintf(w.out, "%d\t%s\t-\tinvalid\n", line, text)
		return
	}
	w.stats.Observations++

	r := w.guard.Check(t)
	status := "ok"
	if _, ok := r.Previous(); !ok {
		status = "first"
	}
	if r.IsBackwardJump() {
		w.stats.Backward++
		status = "backward"
		prev, _ := r.Previous()
		log.WithFields(logger.Fields{
			"at":       "watch",
			"line":     line,
			"previous": unixtime.FormatISO8601(prev),
			"current":  unixtime.FormatISO8601(t),
			"delta":    r.Delta().String(),
		}).Warn("backward time jump")
	}
	if w.validator != nil && !w.validator.IsValid(t) {
		w.stats.Skewed++
		status += ",skewed"
	}
	fmt.Fprintf(w.out, "%d\t%s\t%s\t%s\n", line, unixtime.FormatISO8601(t), r.Delta(), status)
}
