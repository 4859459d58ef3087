//go:build linux

package sandbox

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// initSentinel marks a re-exec of the sandbox binary as the init process
// running inside the freshly cloned namespaces, as opposed to a normal
// front-end invocation. It is never user-facing: [Run] always constructs
// this argv itself.
const initSentinel = "--plz-sandbox-internal-init--"

// flagsEnvVar carries the Flags bitmask from the parent (which computed it
// from argv/env) to the re-exec'd init process, since argv[1:] after the
// sentinel is reserved for the target command.
const flagsEnvVar = "_PLZ_SANDBOX_FLAGS"

// IsInitInvocation reports whether args (as in os.Args) is a re-exec of this
// binary into the sandbox init role, i.e. whether [RunInit] should be called
// instead of the normal front end.
func IsInitInvocation(args []string) bool {
	return len(args) > 1 && args[1] == initSentinel
}

// initArgv builds the argv for the re-exec'd init process: self, the
// sentinel, then the target command and its arguments.
func initArgv(self string, flags Flags, target []string) (argv []string, extraEnv []string) {
	argv = make([]string, 0, len(target)+2)
	argv = append(argv, self, initSentinel)
	argv = append(argv, target...)
	extraEnv = []string{flagsEnvVar + "=" + strconv.FormatUint(uint64(flags), 10)}
	return argv, extraEnv
}

// RunInit performs the privileged setup that must run inside the freshly
// cloned namespaces (steps 3 through 6 of the Namespace Constructor) and
// then execs the target program. By the time RunInit's caller dispatches
// here, steps 1 and 2 — denying setgroups and writing the uid/gid identity
// maps — have already happened: the Go runtime performed them as part of
// the clone/exec that produced this very process, driven by the
// [syscall.SysProcAttr] the parent built (see identityMappings and Run).
//
// RunInit never returns on success: the process image is replaced by the
// target command. On failure it logs a single diagnostic line and exits 1,
// matching the specification's "single diagnostic line identifies the
// failing step" user-visible contract.
func RunInit(args []string, env []string, debugf Debugf) {
	if !IsInitInvocation(args) {
		log.Fatal("RunInit called without the init sentinel")
	}

	target := args[2:]
	if len(target) == 0 {
		log.Fatal("sandbox init: missing target command")
	}

	rawFlags := lookupEnv(env, flagsEnvVar)
	parsedFlags, err := strconv.ParseUint(rawFlags, 10, 32)
	if err != nil {
		log.Fatalf("sandbox init: invalid %s: %v", flagsEnvVar, err)
	}
	flags := Flags(parsedFlags)
	env = unsetEnv(env, flagsEnvVar)

	argv := target
	if flags.Has(FlagFS) {
		argv, env, err = filesystemSetup(argv, env, debugf)
		if err != nil {
			log.Fatalf("sandbox init: filesystem setup: %v", err)
		}
	}

	if flags.Has(FlagNet) {
		if err := networkSetup(debugf); err != nil {
			log.Fatalf("sandbox init: network setup: %v", err)
		}
	}

	if err := unix.Prctl(unix.PR_SET_PDEATHSIG, uintptr(unix.SIGKILL), 0, 0, 0); err != nil {
		log.Fatalf("sandbox init: setting parent-death signal: %v", err)
	}

	path, err := lookPathInEnv(argv[0], env)
	if err != nil {
		log.Fatalf("sandbox init: %s: %v", argv[0], err)
	}

	if err := unix.Exec(path, argv, env); err != nil {
		log.Fatalf("sandbox init: exec %s: %v", argv[0], err)
	}
}

// lookPathInEnv resolves name against PATH taken from env rather than the
// current process's environment, since by this point env may already be the
// rewritten, about-to-be-handed-to-the-target environment. This mirrors what
// execvp itself does in the original C implementation, which is why exec
// here takes a resolved path rather than relying on unix.Exec's own (PATH-
// less) lookup.
func lookPathInEnv(name string, env []string) (string, error) {
	if strings.ContainsRune(name, '/') {
		return name, nil
	}
	for _, dir := range strings.Split(lookupEnv(env, "PATH"), ":") {
		if dir == "" {
			dir = "."
		}
		candidate := dir + "/" + name
		if unix.Access(candidate, unix.X_OK) == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: not found in PATH", name)
}
