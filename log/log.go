// Package log configures logrus and exposes the logging calls used across
// the application.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"youtube-downloader-web/config"
	"youtube-downloader-web/filesystem"
	"youtube-downloader-web/key"
)

// Fields is an alias so callers do not need to import logrus.
type Fields = logrus.Fields

// Setup applies the logs.* settings. Logs go to stderr unless logs.write
// is set, in which case they are appended to a dated file in the logs
// directory.
func Setup() error {
	var out io.Writer = os.Stderr

	if viper.GetBool(key.LogsWrite) {
		dir := Dir()
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}

		path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Dir is where log files are written.
func Dir() string {
	return filepath.Join(config.Dir(), "logs")
}

// WithFields returns an entry carrying fields.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// WithError returns an entry carrying err.
func WithError(err error) *logrus.Entry {
	return logrus.WithError(err)
}

func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
