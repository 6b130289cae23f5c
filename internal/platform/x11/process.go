//go:build linux

package x11

import "github.com/shirou/gopsutil/v4/process"

// ReadProcessMetadata resolves the owning process's image name and
// executable path. Failure (exited process, insufficient privilege) is
// non-fatal; the caller falls back to empty strings. A readable name with
// an unreadable path is still a success — the path can require more
// privilege than the name.
func (s *Source) ReadProcessMetadata(pid uint32) (string, string, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", "", err
	}
	name, err := proc.Name()
	if err != nil {
		return "", "", err
	}
	path, err := proc.Exe()
	if err != nil {
		return name, "", nil
	}
	return name, path, nil
}
