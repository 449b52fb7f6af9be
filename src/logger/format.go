// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/fmld/src/internal/helper/gc"
)

// TimeLayout is the timestamp layout of detailed lines, with millisecond
// precision after a comma.
const TimeLayout = "2006-01-02 15:04:05,000"

// Record is a single log event.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

// Formatter renders a [Record] as one line, including the trailing newline.
type Formatter interface {
	Format(buf gc.Buffer, rec Record)
}

// MessageFormatter renders the message only. It is the default console
// format for user-facing output.
type MessageFormatter struct{}

// Format implements [Formatter].
func (MessageFormatter) Format(buf gc.Buffer, rec Record) {
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}

// DetailFormatter renders "timestamp - LEVEL - message". The buffer sink
// always uses it, and so does the console sink in debug mode.
type DetailFormatter struct{}

// Format implements [Formatter].
func (DetailFormatter) Format(buf gc.Buffer, rec Record) {
	buf.WriteString(rec.Time.Format(TimeLayout))
	buf.WriteString(" - ")
	buf.WriteString(rec.Level.String())
	buf.WriteString(" - ")
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}

// JSONFormatter renders one JSON object per line with the lower-case level
// and the message, for consoles read by other programs.
type JSONFormatter struct{}

// Format implements [Formatter].
func (JSONFormatter) Format(buf gc.Buffer, rec Record) {
	logEntry := map[string]any{
		"level":   strings.ToLower(rec.Level.String()),
		"message": rec.Message,
	}

	data, _ := json.Marshal(logEntry)
	buf.Write(data)
	buf.WriteByte('\n')
}
