package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bostick/common/abort"
	"github.com/bostick/common/clock"
	"github.com/bostick/common/errname"
	"github.com/bostick/common/errutil"
	"github.com/bostick/common/file"
	"github.com/bostick/common/logging"
	"github.com/bostick/common/random"
	"github.com/bostick/common/rtt"
	"github.com/bostick/common/strutil"
)

func main() {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(logging.NewJSONHandler(os.Stderr, level)))
	log := logging.Default("rtt-smoother")
	fatal := abort.New(log, nil)

	cfg, err := loadConfig()
	if err != nil {
		fatal.Abortf("invalid configuration: %s", errutil.NiceString(err))
	}
	lvl, _ := logging.ParseLevel(cfg.LogLevel)
	if err := logging.SetLevel(level, lvl); err != nil {
		fatal.Abortf("set log level: %v", err)
	}

	log.Slog().Info("starting rtt-smoother",
		"window_size", cfg.WindowSize,
		"input_file", cfg.InputFile,
		"textfile_path", cfg.TextfilePath,
		"synthetic_targets", cfg.SyntheticTargets,
	)

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Errorf("rtt-smoother failed: %v (%s)", err, errname.Of(err))
		os.Exit(1)
	}
}

func run(cfg Config, log *logging.Logger, stdin io.Reader, stdout io.Writer) error {
	defer log.Trace("run")()
	c := clock.System()
	start := c.UptimeMillis()

	tracker, err := rtt.NewTracker(cfg.WindowSize,
		rtt.WithLogger(log.Named("rtt")),
		rtt.WithNamespace(cfg.Namespace),
	)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(tracker)
	registerMetrics(reg)

	var samples []sample
	if len(cfg.SyntheticTargets) > 0 {
		samples = synthesize(random.New(cfg.Seed), cfg.SyntheticTargets, cfg.SyntheticSamples)
		linesTotal.WithLabelValues("synthetic").Add(float64(len(samples)))
	} else {
		lines, err := readLines(cfg.InputFile, stdin)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		for i, line := range lines {
			s, ok, err := parseLine(line)
			switch {
			case err != nil:
				linesTotal.WithLabelValues("invalid").Inc()
				log.Warnf("line %d: %v: %q", i+1, err, strutil.Escape(line))
			case !ok:
				linesTotal.WithLabelValues("skipped").Inc()
			default:
				linesTotal.WithLabelValues("ok").Inc()
				samples = append(samples, s)
			}
		}
	}

	for _, s := range samples {
		if err := tracker.Observe(s.target, s.rtt); err != nil {
			linesTotal.WithLabelValues("rejected").Inc()
			log.Warnf("observe: %v", err)
		}
	}

	snapshots := make([]rtt.Snapshot, 0)
	for _, target := range tracker.Targets() {
		snap, ok := tracker.Snapshot(target)
		if !ok {
			continue
		}
		snapshots = append(snapshots, snap)
		log.Slog().Info("target summary",
			"target", target,
			"filtered_mean", snap.FilteredMean.String(),
			"mean", snap.Mean.String(),
			"last", snap.Last.String(),
			"samples", snap.Samples,
		)
	}

	if err := file.WriteJSON(stdout, snapshots); err != nil {
		return err
	}

	if cfg.TextfilePath != "" {
		if err := file.CreateDirectory(filepath.Dir(cfg.TextfilePath)); err != nil {
			return err
		}
		lastRunTimestamp.Set(float64(c.WallClockSeconds()))
		if err := prometheus.WriteToTextfile(cfg.TextfilePath, reg); err != nil {
			return fmt.Errorf("write textfile: %w", err)
		}
		log.Infof("wrote %s", cfg.TextfilePath)
	}

	log.Debugf("processed %d samples in %dms", len(samples), c.UptimeMillis()-start)
	return nil
}
