package sandbox

import "testing"

func TestFlagsHas(t *testing.T) {
	if !FlagAll.Has(FlagNet) || !FlagAll.Has(FlagFS) {
		t.Errorf("FlagAll should have both bits set")
	}
	if (FlagNet).Has(FlagFS) {
		t.Errorf("FlagNet alone should not have FlagFS")
	}
}

func TestFlagsWithoutNet(t *testing.T) {
	got := FlagAll.WithoutNet()
	if got.Has(FlagNet) {
		t.Errorf("WithoutNet() still has FlagNet: %v", got)
	}
	if !got.Has(FlagFS) {
		t.Errorf("WithoutNet() should preserve FlagFS: %v", got)
	}

	// WithoutNet on a value that never had FlagNet set is a no-op.
	if got := FlagFS.WithoutNet(); got != FlagFS {
		t.Errorf("WithoutNet() on FlagFS = %v, want unchanged", got)
	}
}

func TestDebugfNilIsSafe(t *testing.T) {
	var d Debugf
	d.logf("this must not panic: %d", 1)
}
