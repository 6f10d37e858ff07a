package logging

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
)

// LineWriter turns a byte stream into per-line zerolog events at a fixed
// level. It is used to feed ffmpeg's stderr into the debug log in verbose
// mode. Writes are buffered until a newline; Close flushes any trailing
// partial line.
type LineWriter struct {
	logger zerolog.Logger
	level  zerolog.Level
	buf    bytes.Buffer
}

var _ io.WriteCloser = (*LineWriter)(nil)

// NewLineWriter returns a LineWriter emitting events through logger.
func NewLineWriter(logger zerolog.Logger, level zerolog.Level) *LineWriter {
	return &LineWriter{logger: logger, level: level}
}

func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.buf.Write(p)
	for {
		line, err := lw.buf.ReadString('\n')
		if err != nil {
			// Partial line; put it back and wait for more bytes.
			lw.buf.WriteString(line)
			break
		}
		lw.emit(line[:len(line)-1])
	}
	return len(p), nil
}

// Close flushes a trailing line that was not newline-terminated.
func (lw *LineWriter) Close() error {
	if lw.buf.Len() > 0 {
		lw.emit(lw.buf.String())
		lw.buf.Reset()
	}
	return nil
}

func (lw *LineWriter) emit(line string) {
	if line == "" {
		return
	}
	lw.logger.WithLevel(lw.level).Msg(line)
}
