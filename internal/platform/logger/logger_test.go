package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		" WARN ":  log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}

	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOutput(t *testing.T) {
	if got := output(""); got != os.Stdout {
		t.Errorf("output(\"\") = %T, want stdout", got)
	}

	path := filepath.Join(t.TempDir(), "app.log")
	lj, ok := output(path).(*lumberjack.Logger)
	if !ok {
		t.Fatalf("output(%q) is not a lumberjack logger", path)
	}
	if lj.Filename != path {
		t.Errorf("filename = %q, want %q", lj.Filename, path)
	}
}
