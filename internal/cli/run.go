package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roach88/attest/harness"
	"github.com/roach88/attest/internal/suite"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
}

// SuiteResult holds the outcome of a single suite execution.
type SuiteResult struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Pass   bool   `json:"pass"`
	Reason string `json:"reason,omitempty"`
}

// RunResult is the overall result of one run invocation.
type RunResult struct {
	RunID  string        `json:"run_id"`
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <suite.yaml|dir>",
		Short: "Run assertion suites",
		Long: `Run declarative assertion suites through the harness.

Each suite runs in a fresh registry; every case prints one pass/fail line
and a suite stops at its first failing case.

Exit codes:
  0 - All suites passed
  1 - One or more suites failed
  2 - Command error (invalid path, malformed suite file)

Examples:
  attest run checks.yaml
  attest run ./suites
  attest run ./suites --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(opts, args[0], cmd)
		},
	}

	return cmd
}

func runSuites(opts *RunOptions, path string, cmd *cobra.Command) error {
	files, err := findSuiteFiles(path)
	if err != nil {
		return commandError(opts, cmd, "cannot resolve suite files", err)
	}
	if len(files) == 0 {
		if opts.Format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
				Status: "ok",
				Data:   RunResult{RunID: uuid.NewString(), Suites: []SuiteResult{}},
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No suites found.")
		return nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}

	// In JSON mode the envelope owns stdout; the per-case report lines move
	// to stderr so stdout stays machine-readable.
	caseOut := cmd.OutOrStdout()
	if opts.Format == "json" {
		caseOut = cmd.ErrOrStderr()
	}

	result := RunResult{
		RunID:  uuid.NewString(),
		Suites: make([]SuiteResult, 0, len(files)),
		Total:  len(files),
	}
	logger.Info("starting run", "run_id", result.RunID, "suites", len(files))

	for _, file := range files {
		sr, err := runSuiteFile(file, caseOut, logger)
		if err != nil {
			return commandError(opts, cmd, fmt.Sprintf("suite %s", file), err)
		}
		result.Suites = append(result.Suites, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}
	logger.Info("run finished", "run_id", result.RunID,
		"passed", result.Passed, "failed", result.Failed)

	if opts.Format == "json" {
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
			Status: "ok",
			Data:   result,
		}); err != nil {
			return err
		}
	} else {
		printSummary(cmd.OutOrStdout(), result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d suites failed", result.Failed, result.Total))
	}
	return nil
}

// errCodeCommand tags command errors in the JSON error envelope.
const errCodeCommand = "E002"

// commandError wraps err with the command-error exit code. When the JSON
// envelope owns stdout, the error envelope is emitted there first so
// machine consumers see the failure, not just the exit code.
func commandError(opts *RunOptions, cmd *cobra.Command, message string, err error) error {
	exitErr := WrapExitError(ExitCommandError, message, err)
	if opts.Format == "json" {
		_ = json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: errCodeCommand, Message: exitErr.Error()},
		})
	}
	return exitErr
}

// runSuiteFile loads one suite file and runs it in a fresh registry.
// Load errors are command errors; a failing case is a suite failure.
func runSuiteFile(path string, out io.Writer, logger *slog.Logger) (SuiteResult, error) {
	s, err := suite.Load(path)
	if err != nil {
		return SuiteResult{}, err
	}

	reg := harness.NewRegistry()
	reg.SetOutput(out)
	reg.SetLogger(logger)
	s.Register(reg)

	sr := SuiteResult{Name: s.Name, File: path, Pass: true}
	logger.Info("running suite", "name", s.Name, "file", path, "cases", reg.Len())

	if err := reg.Run(); err != nil {
		sr.Pass = false
		sr.Reason = err.Error()
	}
	return sr, nil
}

// findSuiteFiles resolves the argument to an ordered list of suite files.
// A directory yields its *.yaml / *.yml entries, collated with numeric
// ordering so suite_10 sorts after suite_9.
func findSuiteFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}

	collate.New(language.Und, collate.Numeric).SortStrings(files)
	return files, nil
}

// printSummary writes the one-line colored run summary.
func printSummary(w io.Writer, result RunResult) {
	if result.Failed > 0 {
		fmt.Fprintf(w, "%s %d of %d suites failed\n",
			color.RedString("FAIL"), result.Failed, result.Total)
		return
	}
	fmt.Fprintf(w, "%s %d of %d suites passed\n",
		color.GreenString("PASS"), result.Passed, result.Total)
}
