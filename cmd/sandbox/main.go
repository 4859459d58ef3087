// Command sandbox executes a command line inside a freshly created set of
// Linux namespaces. See the sandbox package for the isolation engine.
package main

import (
	"log"
	"os"

	"github.com/please-build/plz-sandbox/sandbox"
)

func main() {
	debugf := sandbox.Debugf(nil)
	if os.Getenv("SANDBOX_DEBUG") == "1" {
		logger := log.New(os.Stderr, "sandbox: ", 0)
		debugf = logger.Printf
	}

	if sandbox.IsInitInvocation(os.Args) {
		sandbox.RunInit(os.Args, os.Environ(), debugf)
		return
	}

	os.Exit(sandbox.RunFrontEnd(os.Args, os.Environ(), false, os.Stderr, debugf))
}
