// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level      string
	File       string
	FormatJSON bool
}

// Setup applies level, format and output. With a file configured, logs go to
// a size-rotated file; otherwise to stderr so command output stays clean.
func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(parseLevel(params.Level))

	if params.File == "" {
		logrus.SetOutput(os.Stderr)
		return
	}
	if !strings.HasSuffix(params.File, ".log") {
		params.File += ".log"
	}
	var out io.Writer = &lumberjack.Logger{
		Filename:   params.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}
	logrus.SetOutput(out)
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(strings.ToLower(level)))
	if err != nil {
		return logrus.WarnLevel
	}
	return parsed
}
