// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package diaglog is the diagnostic log of the lab device repair tool.
//
// A [DiagnosticLog] prints user-facing messages to the console while
// recording every message in memory, and exports that record on request,
// either to a log file named after the host or to a remote paste. Export
// failures are logged and reported as "no result"; they never stop the
// calling program.
//
// Example usage:
//
//	reg := logger.NewRegistry(logger.Options{})
//	dl := diaglog.New(diaglog.Options{Registry: reg, Paste: client})
//
//	log := dl.Logger()
//	log.Infof("Checking device %s", name)
//	log.Debugf("raw reply: %q", reply)
//
//	if path, ok := dl.ExportBufferToFile(""); ok {
//		log.Infof("Log written to %s", path)
//	}
package diaglog
