package sandbox

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// splitHiddenDirs splits a SANDBOX_DIRS-style comma-separated list.
//
// It behaves exactly like strings.Split, which means an empty token between
// two consecutive commas is kept as an empty string in the result. The
// caller (filesystemSetup) skips empty entries without attempting a mount or
// logging anything, so an empty token is silently dropped.
func splitHiddenDirs(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// loadHiddenDirsFile reads an optional HuJSON (JSON-with-comments) file
// containing a flat array of absolute directory paths, in the same relaxed
// format the surrounding tooling's own config file uses. A missing file is
// not an error — it simply contributes no entries. A present-but-malformed
// file is fatal, since the caller asked for it by name.
func loadHiddenDirsFile(path string, debugf Debugf) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			debugf.logf("sandbox dirs file %s does not exist, skipping", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading sandbox dirs file %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing sandbox dirs file %s: %w", path, err)
	}

	var dirs []string
	if err := json.Unmarshal(standardized, &dirs); err != nil {
		return nil, fmt.Errorf("decoding sandbox dirs file %s: %w", path, err)
	}
	return dirs, nil
}

// mergeHiddenDirs unions the environment-variable list with the profile-file
// list, profile entries first so that explicit SANDBOX_DIRS entries retain
// the final say for any caller relying on ordering of the (non-fatal)
// per-entry diagnostics.
func mergeHiddenDirs(fromFile, fromEnv []string) []string {
	if len(fromFile) == 0 {
		return fromEnv
	}
	merged := make([]string, 0, len(fromFile)+len(fromEnv))
	merged = append(merged, fromFile...)
	merged = append(merged, fromEnv...)
	return merged
}
