//go:build linux

package affinity

import "golang.org/x/sys/unix"

// Pin binds the process with the given pid to the reserved cores. An empty set is a
// no-op. Pinning is best effort; callers should log and continue on error.
func Pin(pid int, cores []int) error {
	if len(cores) == 0 {
		return nil
	}

	var set unix.CPUSet
	for _, c := range cores {
		set.Set(c)
	}
	return unix.SchedSetaffinity(pid, &set)
}
