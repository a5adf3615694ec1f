package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rogpeppe/go-internal/diff"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Cubix1729/fitch-proof/driver"
	"github.com/Cubix1729/fitch-proof/syntax"
	"github.com/Cubix1729/fitch-proof/typeset"
)

var errCheckFailed = errors.New("one or more files failed verification")

func newCheckCmd() *cobra.Command {
	var (
		texPath  string
		diffPath string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Verify every proof in the given files, resolving #import directives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, texPath, diffPath, verbose)
		},
	}
	cmd.Flags().StringVar(&texPath, "tex", "", "render every accepted proof to a LaTeX file")
	cmd.Flags().StringVar(&diffPath, "diff", "", "compare the plain-text rendering against a golden file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every admitted line")
	return cmd
}

func runCheck(cmd *cobra.Command, files []string, texPath, diffPath string, verbose bool) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	out := cmd.OutOrStdout()
	bold := term.IsTerminal(int(os.Stdout.Fd()))

	var accepted []typeset.Result
	failed := false

	for _, file := range files {
		results, err := driver.Run(file, driver.OSReader{}, traceFn(verbose))
		if err != nil {
			printCheckError(out, err, bold)
			failed = true
			continue
		}
		for _, r := range results {
			fmt.Fprintf(out, "proof %s  OK\n", r.Goal.Render())
			accepted = append(accepted, typeset.Result{Goal: r.Goal, Proof: r.Proof})
		}
	}

	if texPath != "" {
		if err := typeset.WriteTeXFile(texPath, typeset.TeXDocument(accepted)); err != nil {
			return fmt.Errorf("writing %s: %w", texPath, err)
		}
	}
	if diffPath != "" {
		if err := runDiff(out, diffPath, accepted); err != nil {
			return err
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func traceFn(verbose bool) driver.Trace {
	if !verbose {
		return nil
	}
	return func(file string, lineNum, depth int, kind syntax.RuleKind) {
		logrus.WithFields(logrus.Fields{
			"file":  file,
			"line":  lineNum,
			"depth": depth,
			"rule":  kind.String(),
		}).Debug("admitted line")
	}
}

func printCheckError(w io.Writer, err error, bold bool) {
	msg := err.Error()
	if bold {
		fmt.Fprintf(w, "\x1b[1m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(w, msg)
}

func runDiff(w io.Writer, goldenPath string, accepted []typeset.Result) error {
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", goldenPath, err)
	}
	got := []byte(typeset.TextDocument(accepted))
	d := diff.Diff(goldenPath, golden, "checked output", got)
	if len(d) == 0 {
		return nil
	}
	w.Write(d)
	return errCheckFailed
}
