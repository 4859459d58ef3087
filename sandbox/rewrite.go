package sandbox

import "strings"

// RewritePath substitutes newDir for oldDir in value, but only when oldDir
// occurs literally at offset. If the substring of value starting at offset
// with length len(oldDir) equals oldDir, the result is a freshly built string
// equal to value[:offset] + newDir + value[offset+len(oldDir):]; otherwise
// value is returned unchanged.
//
// oldDir must be non-empty (an empty oldDir matches everywhere, which is
// never the caller's intent) and offset must be a valid index into value,
// i.e. 0 <= offset <= len(value). No trailing-slash normalization is
// performed — the match is literal.
//
// The same logic rewrites both an executable path (offset 0) and an
// environment value (offset just past the '=').
func RewritePath(value, oldDir, newDir string, offset int) string {
	end := offset + len(oldDir)
	if end > len(value) || value[offset:end] != oldDir {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) - len(oldDir) + len(newDir))
	b.WriteString(value[:offset])
	b.WriteString(newDir)
	b.WriteString(value[end:])
	return b.String()
}

// RewriteEnv returns a freshly built copy of env (a slice of "NAME=VALUE"
// strings) with every value whose prefix is oldDir rewritten to newDir.
// For each entry, the first '=' is located and [RewritePath] is invoked on
// the value with an offset one past it; entries with no '=' are copied
// unchanged. env itself is never mutated — a new slice and new strings are
// returned, since the caller is about to exec and has no further use for the
// old environment.
func RewriteEnv(env []string, oldDir, newDir string) []string {
	out := make([]string, len(env))
	for i, entry := range env {
		eq := strings.IndexByte(entry, '=')
		if eq < 0 {
			out[i] = entry
			continue
		}
		out[i] = RewritePath(entry, oldDir, newDir, eq+1)
	}
	return out
}
