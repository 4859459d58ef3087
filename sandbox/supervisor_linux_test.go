//go:build linux

package sandbox

import (
	"testing"

	"golang.org/x/sys/unix"
)

// The exit-code/signal-propagation behavior of Run itself cannot be
// exercised from this package's own test binary: Run re-execs
// os.Executable() with the internal init sentinel, and under `go test` that
// executable is the compiled test binary, whose generated main never
// dispatches to RunInit (only cmd/sandbox and cmd/sandbox-nonet do). Those
// behaviors are covered as e2e tests against the real compiled binary under
// cmd/sandbox instead. What's left here is the one piece of Run's logic
// that is pure and needs no clone at all.

func TestCloneFlagsForBaseNamespaces(t *testing.T) {
	want := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC | unix.CLONE_NEWPID)
	if got := cloneFlagsFor(0); got != want {
		t.Errorf("cloneFlagsFor(0) = %#x, want %#x", got, want)
	}
}

func TestCloneFlagsForNet(t *testing.T) {
	base := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC | unix.CLONE_NEWPID)
	want := base | uintptr(unix.CLONE_NEWNET)
	if got := cloneFlagsFor(FlagNet); got != want {
		t.Errorf("cloneFlagsFor(FlagNet) = %#x, want %#x", got, want)
	}
}

func TestCloneFlagsForFS(t *testing.T) {
	base := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC | unix.CLONE_NEWPID)
	want := base | uintptr(unix.CLONE_NEWNS)
	if got := cloneFlagsFor(FlagFS); got != want {
		t.Errorf("cloneFlagsFor(FlagFS) = %#x, want %#x", got, want)
	}
}

func TestCloneFlagsForAll(t *testing.T) {
	want := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC | unix.CLONE_NEWPID |
		unix.CLONE_NEWNET | unix.CLONE_NEWNS)
	if got := cloneFlagsFor(FlagAll); got != want {
		t.Errorf("cloneFlagsFor(FlagAll) = %#x, want %#x", got, want)
	}
}
