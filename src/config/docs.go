// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the fmld configuration from a JSON or YAML file,
// applying defaults first and environment overrides last.
package config
