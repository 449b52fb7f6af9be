// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the fmld command-line interface.
//
// It implements a Cobra-based CLI with three commands:
//   - logdir: print the directory diagnostic logs are written to
//   - collect: record a host summary and export the log buffer to a file,
//     optionally uploading it to the paste service
//   - paste: upload a file or standard input to the paste service
//
// Every command shares one [diaglog.DiagnosticLog], built from the
// configuration file and the registry handed in by the entry point.
package cli
