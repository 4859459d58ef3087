//go:build linux

package sandbox

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// networkSetup performs step 4 of the Namespace Constructor: bring the
// loopback interface up, assign it the secondary address 10.1.1.1/8, and add
// a default route via 127.0.0.1.
//
// The specification describes this at the level of a datagram-socket ioctl
// for bringing lo up and a raw RTM_NEWADDR/SIOCADDRT pair for the address
// and route. vishvananda/netlink wraps the identical netlink operations
// (link up, address add, route add) without hand-rolled message encoding,
// and resolves the loopback interface by name rather than hardcoding
// ifindex 1 — open question 2 in the specification's design notes flags the
// hardcoded index as a latent assumption; resolving "lo" by name sidesteps
// it entirely while remaining correct on every Linux system, where "lo" is
// conventionally but not necessarily interface 1.
func networkSetup(debugf Debugf) error {
	link, err := netlink.LinkByName("lo")
	if err != nil {
		return fmt.Errorf("looking up loopback interface: %w", err)
	}

	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("bringing loopback interface up: %w", err)
	}
	debugf.logf("loopback interface up")

	addr := &netlink.Addr{IPNet: &net.IPNet{
		IP:   net.IPv4(10, 1, 1, 1),
		Mask: net.CIDRMask(8, 32),
	}}
	if err := netlink.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("assigning address %s to loopback interface: %w", addr, err)
	}
	debugf.logf("assigned %s to loopback interface", addr)

	route := &netlink.Route{
		LinkIndex: link.Attrs().Index,
		Gw:        net.IPv4(127, 0, 0, 1),
	}
	if err := netlink.RouteAdd(route); err != nil {
		return fmt.Errorf("adding default route via 127.0.0.1: %w", err)
	}
	debugf.logf("added default route via 127.0.0.1")

	return nil
}
