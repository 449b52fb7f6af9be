// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "strconv"

// Level is the severity of a log record. Higher values are more severe.
type Level int

const (
	LevelDebug Level = 10 * (iota + 1)
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the upper-case level name used in detailed output.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "Level " + strconv.Itoa(int(l))
	}
}
