package sandbox

import "strings"

// lookupEnv returns the value of name within env (a slice of "NAME=VALUE"
// pairs), or "" if absent. Unlike os.Getenv it operates on an explicit
// slice, since the Namespace Constructor and Front End both need to read
// environments that are not (yet, or no longer) the current process's own.
func lookupEnv(env []string, name string) string {
	prefix := name + "="
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, prefix); ok {
			return v
		}
	}
	return ""
}

// setEnv returns a copy of env with name set to value, appending a new entry
// if name was not already present.
func setEnv(env []string, name, value string) []string {
	prefix := name + "="
	out := make([]string, 0, len(env)+1)
	found := false
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			out = append(out, prefix+value)
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		out = append(out, prefix+value)
	}
	return out
}

// shouldSkipFilesystemRemap implements step 3a of the Namespace Constructor:
// when TMP_DIR is already a /tmp/ subpath, filesystem remapping is skipped
// entirely so the invoker's own temp directory remains visible.
func shouldSkipFilesystemRemap(tmpDir string) bool {
	return strings.HasPrefix(tmpDir, "/tmp/")
}

// unsetEnv returns a copy of env with every entry named name removed.
func unsetEnv(env []string, name string) []string {
	prefix := name + "="
	out := make([]string, 0, len(env))
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			continue
		}
		out = append(out, e)
	}
	return out
}
