// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
)

// Host describes the machine.
type Host struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Arch            string
}

// hostInfo is swapped in tests.
var hostInfo = host.InfoWithContext

// Describe returns what is known about the host. Fields gopsutil cannot
// fill are taken from the runtime and os packages.
func Describe(ctx context.Context) Host {
	h := Host{OS: runtime.GOOS, Arch: runtime.GOARCH}

	if info, err := hostInfo(ctx); err == nil && info != nil {
		h.Hostname = info.Hostname
		if info.OS != "" {
			h.OS = info.OS
		}
		h.Platform = info.Platform
		h.PlatformVersion = info.PlatformVersion
		h.KernelVersion = info.KernelVersion
		if info.KernelArch != "" {
			h.Arch = info.KernelArch
		}
	}

	if h.Hostname == "" {
		h.Hostname, _ = os.Hostname()
	}

	return h
}

// Hostname returns the network name of the host, or "" if unknown.
func Hostname(ctx context.Context) string { return Describe(ctx).Hostname }

// String renders the host on one line.
func (h Host) String() string {
	parts := []string{h.Hostname, h.OS}
	if h.Platform != "" {
		parts = append(parts, strings.TrimSpace(h.Platform+" "+h.PlatformVersion))
	}
	if h.KernelVersion != "" {
		parts = append(parts, "kernel "+h.KernelVersion)
	}
	parts = append(parts, h.Arch)
	return strings.Join(parts, " / ")
}

// DefaultSystemLogDir returns the system log directory for goos.
// Windows uses "/var/log", resolved against the current drive.
func DefaultSystemLogDir(goos string) string {
	if goos == "windows" {
		return "/var/log"
	}
	return "/var/tmp"
}

// DiskFree returns the free bytes of the filesystem holding path.
func DiskFree(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read disk usage of %s: %w", path, err)
	}
	return usage.Free, nil
}
