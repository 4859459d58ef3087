//go:build !linux

package sandbox

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Run on non-Linux hosts degrades to a transparent pass-through exec of the
// target, preserving the CLI contract without attempting any isolation —
// per the specification, non-Linux behavior is out of scope beyond this
// fallback.
func Run(argv []string, _ Flags, debugf Debugf) (exitCode int, err error) {
	debugf.logf("namespaces are not available on %s, executing %s directly", runtime.GOOS, argv[0])

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("running %s: %w", argv[0], err)
	}
	return 0, nil
}

// IsInitInvocation is always false on non-Linux hosts: there is no
// namespace setup to re-exec into.
func IsInitInvocation(args []string) bool { return false }

// RunInit is unreachable on non-Linux hosts since IsInitInvocation never
// returns true.
func RunInit(args []string, env []string, debugf Debugf) {
	panic("sandbox: RunInit called on a platform without namespace support")
}
