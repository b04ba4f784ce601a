package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the --log-file sink.
const (
	fileMaxSizeMB  = 5
	fileMaxBackups = 3
	fileMaxAgeDays = 14
)

// NewFileWriter returns a size-rotated writer for path.
// The caller closes it on exit.
func NewFileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
	}
}

// Tee returns a writer that mirrors out into sink when sink is non-nil.
func Tee(out io.Writer, sink io.Writer) io.Writer {
	if sink == nil {
		return out
	}
	return io.MultiWriter(out, sink)
}
