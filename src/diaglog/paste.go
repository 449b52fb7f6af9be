// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/fmld/src/internal/paste"
)

// errNoPasteClient is logged when paste exports are attempted without a client.
var errNoPasteClient = errors.New("paste client is not configured")

// PasteOptions controls how a paste is stored and shown.
type PasteOptions struct {
	// Permanent keeps the paste instead of letting it expire.
	Permanent bool
	// Colorized enables syntax coloring.
	Colorized bool
}

// CreatePaste submits content to the paste service after pointing the
// client at a locally available CA bundle.
//
// Every failure is logged at DEBUG level only, since a missing paste is
// not critical, and reported as ("", false).
func (d *DiagnosticLog) CreatePaste(ctx context.Context, content string, opts PasteOptions) (string, bool) {
	log := d.Logger()

	if d.paste == nil {
		log.Debugf("Failed to create paste: %v", errNoPasteClient)
		return "", false
	}

	d.paste.ConfigureTrust()
	url, err := d.paste.Create(ctx, paste.Paste{
		Content:   content,
		Permanent: opts.Permanent,
		Colorized: opts.Colorized,
	})
	if err != nil {
		log.Debugf("Failed to create paste: %v", err)
		return "", false
	}

	return url, true
}

// ExportBufferToPaste submits the buffer contents as a paste with default
// options. An empty buffer yields ("", false) without contacting the service.
func (d *DiagnosticLog) ExportBufferToPaste(ctx context.Context) (string, bool) {
	contents := d.mustBufferContents()
	if contents == "" {
		return "", false
	}
	return d.CreatePaste(ctx, contents, PasteOptions{})
}
