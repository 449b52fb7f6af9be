// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sysinfo identifies the host fmld runs on. It wraps [gopsutil] so
// log file names and diagnostic reports carry the machine's name and
// operating system.
//
// [gopsutil]: https://github.com/shirou/gopsutil
package sysinfo
