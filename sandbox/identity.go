package sandbox

import (
	"fmt"
	"syscall"
)

// mappingLine formats the single-row identity map line written to
// /proc/self/uid_map or /proc/self/gid_map: the outer id mapped to itself,
// with a range of 1. It is kept for documentation and testing purposes even
// though the actual write is performed by the Go runtime's clone/exec
// bridge (see identityMappings and [syscall.SysProcAttr.UidMappings]).
func mappingLine(id int) string {
	return fmt.Sprintf("%d %d 1\n", id, id)
}

// identityMappings builds the single-row uid and gid mapping records for the
// clone invocation. A single entry with ContainerID == HostID == id and
// Size == 1 is the Go equivalent of writing mappingLine(id) to the
// corresponding /proc/self/{u,g}id_map file — the kernel performs the exact
// same write, just via the fork/exec helper in the runtime rather than a
// userspace fopen/fprintf pair.
func identityMappings(uid, gid int) (uidMappings, gidMappings []syscall.SysProcIDMap) {
	uidMappings = []syscall.SysProcIDMap{{ContainerID: uid, HostID: uid, Size: 1}}
	gidMappings = []syscall.SysProcIDMap{{ContainerID: gid, HostID: gid, Size: 1}}
	return uidMappings, gidMappings
}
