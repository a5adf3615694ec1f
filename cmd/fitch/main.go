// Command fitch checks Fitch-style natural deduction proofs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns a process exit code; it is
// factored out of main so testscript can multiplex it as a subprocess
// command without a real os.Exit tearing down the test binary.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}
