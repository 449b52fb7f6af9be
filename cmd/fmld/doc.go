// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// fmld collects diagnostic logs on field machines and shares them with
// support through a paste service.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/fmld/cmd/fmld@latest
//
// Paste credentials can be baked in at build time:
//
//	go build -ldflags "-X github.com/H0llyW00dzZ/fmld/src/config.DefaultPasteEndpoint=https://paste.example/api \
//	  -X github.com/H0llyW00dzZ/fmld/src/config.DefaultPasteAppID=... \
//	  -X github.com/H0llyW00dzZ/fmld/src/config.DefaultPasteAppToken=..." ./cmd/fmld
//
// # Usage
//
//	fmld [--config FILE] [--debug] COMMAND
//
// # Commands
//
//	logdir                 Print the directory log files are written to
//	collect [-o FILE] [-p] Export the log buffer to a file, optionally uploading it
//	paste [FILE]           Upload FILE or standard input to the paste service
//
// # Examples
//
// Collect a log in the default directory and upload it:
//
//	fmld collect --paste
//
// Share the output of another tool:
//
//	dmesg | fmld paste --permanent
package main
