package sandbox

import (
	"fmt"
	"io"
	"path/filepath"
)

const (
	shareNetworkEnv = "SHARE_NETWORK"
	shareMountEnv   = "SHARE_MOUNT"
)

// RunFrontEnd implements the Front End component: it parses args (as in
// os.Args), reads the two opt-out environment toggles, and dispatches to
// [Run]. It returns the process exit code the caller should use.
//
// forceNoNet corresponds to the "nonet" front-end variant: when true,
// FlagNet is masked off unconditionally, after the toggle resolution below,
// regardless of SHARE_NETWORK.
//
// Each of SHARE_NETWORK and SHARE_MOUNT is an opt-out: only the literal
// value "1" suppresses the corresponding flag. Any other value, or absence,
// leaves the flag set. This is deliberately not a generic boolean parse —
// "0", "false", "no" and unset all mean the same thing here, matching the
// original tool's reading of these two variables.
func RunFrontEnd(args, env []string, forceNoNet bool, stderr io.Writer, debugf Debugf) int {
	if len(args) < 2 {
		fmt.Fprintf(stderr, "usage: %s <command> [args...]\n", programName(args))
		return 1
	}

	flags := FlagAll
	if lookupEnv(env, shareNetworkEnv) == "1" {
		flags &^= FlagNet
	}
	if lookupEnv(env, shareMountEnv) == "1" {
		flags &^= FlagFS
	}
	if forceNoNet {
		flags = flags.WithoutNet()
	}

	exitCode, err := Run(args[1:], flags, debugf)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

func programName(args []string) string {
	if len(args) == 0 {
		return "sandbox"
	}
	return filepath.Base(args[0])
}
