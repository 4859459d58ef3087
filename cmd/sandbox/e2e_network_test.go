package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// ============================================================================
// E2E tests: Namespace Constructor, network half
// ============================================================================

func Test_Sandbox_Loopback_Is_Up_With_Address(t *testing.T) {
	requiresLinuxSandbox(t)
	t.Parallel()

	if _, err := exec.LookPath("ip"); err != nil {
		t.Skip("test requires the ip(8) tool from iproute2")
	}

	stdout, stderr, code := runSandbox(t, nil, "/bin/sh", "-c", "ip -o addr show lo")
	if code != 0 {
		t.Fatalf("ip -o addr show lo failed: %s", stderr)
	}
	if !strings.Contains(stdout, "UP") {
		t.Errorf("expected lo to be up, got: %s", stdout)
	}
	if !strings.Contains(stdout, "10.1.1.1") {
		t.Errorf("expected 10.1.1.1 assigned to lo, got: %s", stdout)
	}
}

func Test_Sandbox_Network_Namespace_Isolated_By_Default(t *testing.T) {
	requiresLinuxSandbox(t)
	t.Parallel()

	hostNS, err := os.Readlink("/proc/self/ns/net")
	if err != nil {
		t.Fatalf("reading host network namespace: %v", err)
	}

	stdout, stderr, code := runSandbox(t, nil, "/bin/sh", "-c", "readlink /proc/self/ns/net")
	if code != 0 {
		t.Fatalf("sandboxed command failed: %s", stderr)
	}
	if childNS := strings.TrimSpace(stdout); childNS == hostNS {
		t.Errorf("expected an isolated network namespace, got the host's: %s", childNS)
	}
}

func Test_Sandbox_Network_Namespace_Shared_With_ShareNetwork(t *testing.T) {
	requiresLinuxSandbox(t)
	t.Parallel()

	hostNS, err := os.Readlink("/proc/self/ns/net")
	if err != nil {
		t.Fatalf("reading host network namespace: %v", err)
	}

	env := map[string]string{"SHARE_NETWORK": "1"}
	stdout, stderr, code := runSandbox(t, env, "/bin/sh", "-c", "readlink /proc/self/ns/net")
	if code != 0 {
		t.Fatalf("sandboxed command failed: %s", stderr)
	}
	if childNS := strings.TrimSpace(stdout); childNS != hostNS {
		t.Errorf("SHARE_NETWORK=1 should share the host's network namespace, got %s want %s", childNS, hostNS)
	}
}
