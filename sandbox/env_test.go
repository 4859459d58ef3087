package sandbox

import "testing"

func TestShouldSkipFilesystemRemap(t *testing.T) {
	cases := map[string]bool{
		"":                  false,
		"/tmp/build.123":    true,
		"/tmp/":             true,
		"/var/tmp/build.1":  false,
		"/work/plz-out/tmp": false,
	}
	for tmpDir, want := range cases {
		if got := shouldSkipFilesystemRemap(tmpDir); got != want {
			t.Errorf("shouldSkipFilesystemRemap(%q) = %v, want %v", tmpDir, got, want)
		}
	}
}

func TestLookupSetUnsetEnv(t *testing.T) {
	env := []string{"A=1", "B=2"}

	if got := lookupEnv(env, "A"); got != "1" {
		t.Errorf("lookupEnv(A) = %q, want 1", got)
	}
	if got := lookupEnv(env, "MISSING"); got != "" {
		t.Errorf("lookupEnv(MISSING) = %q, want empty", got)
	}

	updated := setEnv(env, "A", "9")
	if got := lookupEnv(updated, "A"); got != "9" {
		t.Errorf("after setEnv, lookupEnv(A) = %q, want 9", got)
	}
	if len(env) != 2 || env[0] != "A=1" {
		t.Errorf("setEnv mutated its input: %v", env)
	}

	appended := setEnv(env, "C", "3")
	if got := lookupEnv(appended, "C"); got != "3" {
		t.Errorf("setEnv did not append a missing var: %v", appended)
	}

	removed := unsetEnv(env, "A")
	if lookupEnv(removed, "A") != "" {
		t.Errorf("unsetEnv did not remove A: %v", removed)
	}
	if len(removed) != 1 {
		t.Errorf("unsetEnv left extra entries: %v", removed)
	}
}
