//go:build linux

package sandbox

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Run is the Child Supervisor: it clones into a fresh set of namespaces
// selected by flags, waits for the sandboxed command to finish, and
// translates its termination back onto the calling process.
//
// The "allocate a stack, invoke clone" half of the contract is delegated to
// os/exec plus syscall.SysProcAttr — the idiomatic Go surface over clone(2)
// — rather than a hand-managed mmap'd stack: the Go runtime's fork/exec
// helper already performs an equivalent anonymous-stack clone, and rebuilding
// that machinery by hand would only reproduce what os/exec already does
// correctly. What Run constructs explicitly is the namespace flag set and
// the uid/gid identity maps (via [identityMappings]), which the runtime
// applies to the child before the child's own main (running as the re-exec'd
// init role, see RunInit) ever gets to run.
//
// argv is the target command and its arguments; it is never the sandbox
// binary's own argv — the sentinel re-exec that reaches RunInit is
// constructed here, invisibly to the caller.
func Run(argv []string, flags Flags, debugf Debugf) (exitCode int, err error) {
	self, err := os.Executable()
	if err != nil {
		return 1, fmt.Errorf("locating sandbox binary for re-exec: %w", err)
	}

	childArgv, extraEnv := initArgv(self, flags, argv)

	cmd := exec.Command(childArgv[0], childArgv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extraEnv...)

	uid := os.Getuid()
	gid := os.Getgid()
	uidMappings, gidMappings := identityMappings(uid, gid)

	cloneFlags := cloneFlagsFor(flags)

	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags:                 cloneFlags,
		UidMappings:                uidMappings,
		GidMappings:                gidMappings,
		GidMappingsEnableSetgroups: false,
	}

	debugf.logf("cloning with flags=%#x uid=%d gid=%d", cloneFlags, uid, gid)

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("%w\nplz-sandbox requires support for user namespaces (usually Linux >= 3.10)", err)
	}

	err = cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 1, fmt.Errorf("waiting for sandboxed process: %w", err)
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return 1, fmt.Errorf("unrecognized wait status for sandboxed process: %w", err)
	}

	if status.Signaled() {
		// Re-raise the same signal on ourselves instead of returning a
		// normal exit code, so the caller observes identical termination
		// semantics to the child's.
		_ = unix.Kill(os.Getpid(), status.Signal())
		select {} // unreachable once the re-raised signal is delivered
	}

	if status.Exited() {
		return status.ExitStatus(), nil
	}

	return 1, fmt.Errorf("sandboxed process neither exited nor was signalled: %v", status)
}

// cloneFlagsFor computes the clone(2) flag set for flags: the four
// namespaces that are always unshared, plus CLONE_NEWNET/CLONE_NEWNS as
// FlagNet/FlagFS independently select.
func cloneFlagsFor(flags Flags) uintptr {
	cloneFlags := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC | unix.CLONE_NEWPID)
	if flags.Has(FlagNet) {
		cloneFlags |= unix.CLONE_NEWNET
	}
	if flags.Has(FlagFS) {
		cloneFlags |= unix.CLONE_NEWNS
	}
	return cloneFlags
}
