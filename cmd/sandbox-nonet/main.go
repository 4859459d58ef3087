// Command sandbox-nonet is the "nonet" front-end variant: identical to
// sandbox except that the network namespace is never unshared, regardless
// of SHARE_NETWORK — the sandboxed command always keeps host network
// access. Useful for rules that need network access (e.g. fetching
// dependencies) but should still get mount/PID/IPC/UTS isolation.
package main

import (
	"log"
	"os"

	"github.com/please-build/plz-sandbox/sandbox"
)

func main() {
	debugf := sandbox.Debugf(nil)
	if os.Getenv("SANDBOX_DEBUG") == "1" {
		logger := log.New(os.Stderr, "sandbox-nonet: ", 0)
		debugf = logger.Printf
	}

	if sandbox.IsInitInvocation(os.Args) {
		sandbox.RunInit(os.Args, os.Environ(), debugf)
		return
	}

	os.Exit(sandbox.RunFrontEnd(os.Args, os.Environ(), true, os.Stderr, debugf))
}
