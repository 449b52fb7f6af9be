// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/fmld/src/logger"
)

func BenchmarkLog_Infof(b *testing.B) {
	log := logger.NewRegistry(logger.Options{Console: io.Discard}).Logger()

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Infof("Benchmark message %d", i)
	}
}

func BenchmarkLog_DebugfBufferOnly(b *testing.B) {
	log := logger.NewRegistry(logger.Options{Console: io.Discard}).Logger()

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Debugf("Probing log directory %s attempt %d", "/var/tmp", i)
	}
}

func BenchmarkLog_InfofConcurrent(b *testing.B) {
	log := logger.NewRegistry(logger.Options{Console: io.Discard}).Logger()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Infof("Concurrent message %d", i)
			i++
		}
	})
}

func BenchmarkLog_JSONConsole(b *testing.B) {
	reg := logger.NewRegistry(logger.Options{Console: io.Discard, Plain: logger.JSONFormatter{}})
	log := reg.Logger()

	msg := `Paste failed: "invalid token" for app\nDetails: status=401`

	b.ReportAllocs()

	for b.Loop() {
		log.Infof("%s", msg)
	}
}
