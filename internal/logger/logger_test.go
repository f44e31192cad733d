// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("new should successfully create a logger", func(t *testing.T) {
		l := New(slog.LevelInfo)
		if l == nil {
			t.Fatal("expected logger to be non-nil")
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("level filters lower-severity messages", func(t *testing.T) {
		tests := []struct {
			name  string
			level slog.Level
			want  []string
			skip  []string
		}{
			{"DEBUG", slog.LevelDebug, []string{"debug", "info", "warn", "error"}, nil},
			{"INFO", slog.LevelInfo, []string{"info", "warn", "error"}, []string{"debug"}},
			{"WARN", slog.LevelWarn, []string{"warn", "error"}, []string{"debug", "info"}},
			{"ERROR", slog.LevelError, []string{"error"}, []string{"debug", "info", "warn"}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				buf := bytes.NewBuffer(nil)
				l := NewLogger(tc.level, buf)
				l.Debug("debug")
				l.Info("info")
				l.Warn("warn")
				l.Error("error")

				for _, msg := range tc.want {
					if !bytes.Contains(buf.Bytes(), []byte("msg="+msg)) {
						t.Errorf("expected %q message to be logged", msg)
					}
				}
				for _, msg := range tc.skip {
					if bytes.Contains(buf.Bytes(), []byte("msg="+msg)) {
						t.Errorf("did not expect %q message to be logged", msg)
					}
				}
			})
		}
	})
}

func TestErr(t *testing.T) {
	t.Run("error attributes should be logged", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		l := NewLogger(slog.LevelDebug, buf)
		want := "intentionally failing"
		l.Error("this is a test", Err(errors.New(want)))

		if !bytes.Contains(buf.Bytes(), []byte(`error="`+want+`"`)) {
			t.Errorf("expected error attribute to contain %q, got: %q", want, buf.String())
		}
	})
}
