package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string // rotating log file; stdout when empty
}

// Setup configures the standard logrus logger.
func Setup(opts Options) {
	log.SetOutput(output(opts.File))
	log.SetLevel(parseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func output(file string) io.Writer {
	if strings.TrimSpace(file) == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
