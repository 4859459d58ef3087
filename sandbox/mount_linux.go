//go:build linux

package sandbox

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// tmpDirEnv/sandboxDirsEnv/sandboxDirsFile are the environment variables
// the filesystem setup step reads; testDirEnv/homeEnv/tmpdirEnv (and
// tmpDirEnv again) are the ones it writes.
const (
	tmpDirEnv       = "TMP_DIR"
	sandboxDirsEnv  = "SANDBOX_DIRS"
	sandboxDirsFile = "SANDBOX_DIRS_FILE"
	testDirEnv      = "TEST_DIR"
	homeEnv         = "HOME"
	tmpdirEnv       = "TMPDIR"
)

// filesystemSetup performs step 3 of the Namespace Constructor: private
// remount, tmpfs on /tmp, hidden-directory overlays, the working-directory
// bind mount with path/env rewriting, the read-only remount of / and finally
// a fresh /proc mount.
//
// env is the process's current environment (as "NAME=VALUE" pairs); it
// returns the environment the target program should exec with, and the
// (possibly rewritten) argv[0]. If TMP_DIR is already a /tmp/ subpath, setup
// for this step is a no-op and env/argv are returned unmodified (case 3a).
// If TMP_DIR is absent, every other part of the step still runs; only the
// bind mount, the rewriting and the chdir are left out.
func filesystemSetup(argv, env []string, debugf Debugf) (newArgv, newEnv []string, err error) {
	tmpDir := lookupEnv(env, tmpDirEnv)

	if shouldSkipFilesystemRemap(tmpDir) {
		debugf.logf("TMP_DIR %s is already under /tmp, skipping filesystem remapping", tmpDir)
		return argv, env, nil
	}

	if err := unix.Mount("none", "/", "", unix.MS_REC|unix.MS_PRIVATE, ""); err != nil {
		return nil, nil, fmt.Errorf("making / private: %w", err)
	}

	if err := mountScratchTmp(); err != nil {
		return nil, nil, err
	}
	env = setEnv(env, tmpdirEnv, "/tmp")

	dirsFromFile, err := loadHiddenDirsFile(lookupEnv(env, sandboxDirsFile), debugf)
	if err != nil {
		return nil, nil, err
	}
	hiddenDirs := mergeHiddenDirs(dirsFromFile, splitHiddenDirs(lookupEnv(env, sandboxDirsEnv)))
	for _, dir := range hiddenDirs {
		if dir == "" {
			continue
		}
		if err := mountHiddenDir(dir, debugf); err != nil {
			return nil, nil, err
		}
	}
	env = unsetEnv(env, sandboxDirsEnv)

	if tmpDir != "" {
		if err := os.MkdirAll(innerTmp, 0o700); err != nil {
			return nil, nil, fmt.Errorf("creating %s: %w", innerTmp, err)
		}
		if err := unix.Mount(tmpDir, innerTmp, "", unix.MS_BIND, ""); err != nil {
			return nil, nil, fmt.Errorf("bind-mounting %s onto %s: %w", tmpDir, innerTmp, err)
		}

		argv = append([]string(nil), argv...)
		argv[0] = RewritePath(argv[0], tmpDir, innerTmp, 0)
		env = RewriteEnv(env, tmpDir, innerTmp)

		env = setEnv(env, testDirEnv, innerTmp)
		env = setEnv(env, tmpDirEnv, innerTmp)
		env = setEnv(env, homeEnv, innerTmp)

		if err := unix.Chdir(innerTmp); err != nil {
			return nil, nil, fmt.Errorf("chdir to %s: %w", innerTmp, err)
		}
	}

	if err := unix.Mount("none", "/", "", unix.MS_REMOUNT|unix.MS_RDONLY|unix.MS_BIND, ""); err != nil {
		return nil, nil, fmt.Errorf("remounting / read-only: %w", err)
	}

	if err := unix.Mount("proc", "/proc", "proc", 0, ""); err != nil {
		return nil, nil, fmt.Errorf("mounting /proc: %w", err)
	}

	return argv, env, nil
}

func mountScratchTmp() error {
	flags := uintptr(unix.MS_LAZYTIME | unix.MS_NOATIME | unix.MS_NODEV | unix.MS_NOSUID)
	if err := unix.Mount("tmpfs", "/tmp", "tmpfs", flags, ""); err != nil {
		return fmt.Errorf("mounting tmpfs at /tmp: %w", err)
	}
	return nil
}

// mountHiddenDir overlays dir with an empty, read-only tmpfs. A missing or
// non-directory dir is a tolerable error: it is logged and ignored, matching
// the taxonomy in §7 of the specification. Any other failure is fatal.
func mountHiddenDir(dir string, debugf Debugf) error {
	flags := uintptr(unix.MS_LAZYTIME | unix.MS_NOATIME | unix.MS_NODEV | unix.MS_NOSUID | unix.MS_NOEXEC | unix.MS_RDONLY)
	err := unix.Mount("tmpfs", dir, "tmpfs", flags, "size=0")
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		debugf.logf("skipping hidden dir %s: %v", dir, err)
		return nil
	default:
		return fmt.Errorf("mounting hidden tmpfs at %s: %w", dir, err)
	}
}
