package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/clinmetrics/edss/internal/edss"
	"github.com/clinmetrics/edss/internal/naming"
	"github.com/clinmetrics/edss/internal/record"
	"github.com/clinmetrics/edss/internal/render"
	"github.com/spf13/cobra"
)

type scoreFlags struct {
	format     string
	out        string
	namingName string
	namingFile string
	suffixes   []string
	failAbove  string
	verbose    bool
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <record-file>",
		Short: "Score a record file and produce an EDSS report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json, md, or text")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.namingName, "naming", "default", "Built-in naming scheme name")
	flags.StringVar(&f.namingFile, "naming-file", "", "Custom naming scheme YAML file (overrides --naming)")
	flags.StringSliceVar(&f.suffixes, "suffix", nil, "Field-name suffix per visit (may be repeated)")
	flags.StringVar(&f.failAbove, "fail-above", "", "Exit non-zero if any result exceeds this scale value")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runScore(recordPath string, f *scoreFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	// 1. Resolve the naming scheme
	var sch *naming.Scheme
	var err error
	if f.namingFile != "" {
		verbose("Loading naming scheme from %s", f.namingFile)
		sch, err = naming.LoadFile(f.namingFile)
		if err != nil {
			return exitError(3, "failed to load naming scheme: %v", err)
		}
		if errs := sch.Validate(); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, "Naming scheme validation errors:")
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %s\n", e)
			}
			return exitError(3, "invalid naming scheme: %s", f.namingFile)
		}
	} else {
		verbose("Loading built-in naming scheme: %s", f.namingName)
		sch, err = naming.LoadBuiltin(f.namingName)
		if err != nil {
			return exitError(3, "failed to load naming scheme: %v", err)
		}
	}

	// 2. Load the record
	verbose("Loading record: %s", recordPath)
	rf, err := record.Load(recordPath)
	if err != nil {
		return exitError(3, "failed to load record: %v", err)
	}

	// 3. Extract and score, one result per visit suffix
	suffixes := f.suffixes
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}

	rep := &edss.Report{
		Tool:       "edss",
		Version:    version,
		RecordFile: filepath.Base(recordPath),
		RecordHash: rf.Hash,
		Naming:     sch.Name,
	}
	for _, suf := range suffixes {
		scores, ok, err := record.Extract(rf.Record, sch, suf)
		if err != nil {
			return exitError(5, "record %s: %v", recordPath, err)
		}
		if !ok {
			if suf != "" {
				return exitError(5, "record %s is incomplete for suffix %q: one or more sub-scores missing or empty", recordPath, suf)
			}
			return exitError(5, "record %s is incomplete: one or more sub-scores missing or empty", recordPath)
		}
		res := edss.Evaluate(scores)
		res.Suffix = suf
		verbose("Scored suffix %q: %s (%s)", suf, res.Value, res.Phase)
		rep.Results = append(rep.Results, res)
	}

	// 4. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	case "text":
		output = render.Text(rep)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	// 5. Exit code based on --fail-above
	if f.failAbove != "" {
		threshold := edss.ScaleValue(f.failAbove)
		if !threshold.Valid() {
			return exitError(3, "invalid --fail-above value: %s", f.failAbove)
		}
		for _, res := range rep.Results {
			if res.Value.Steps() > threshold.Steps() {
				return exitError(2, "scale value %s exceeds threshold %s", res.Value, threshold)
			}
		}
	}

	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
