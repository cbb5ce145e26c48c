// Package diag writes the human-readable diagnostics stream.
//
// Lines are "[tag] text" terminated by CRLF so they read cleanly on a
// serial terminal. Formatting uses x/conv; fmt stays out of the MCU image.
package diag

import (
	"io"

	"stampkey-go/types"
	"stampkey-go/x/conv"
)

// Logger is not safe for concurrent use; the firmware has one control flow.
type Logger struct {
	w   io.Writer
	buf []byte
}

// New returns a Logger writing to w. A nil w discards output.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, buf: make([]byte, 0, 96)}
}

func (l *Logger) begin(tag string) {
	l.buf = l.buf[:0]
	l.buf = append(l.buf, '[')
	l.buf = append(l.buf, tag...)
	l.buf = append(l.buf, "] "...)
}

func (l *Logger) end() {
	l.buf = append(l.buf, '\r', '\n')
	_, _ = l.w.Write(l.buf)
}

// Info writes a plain message.
func (l *Logger) Info(tag, msg string) {
	l.begin(tag)
	l.buf = append(l.buf, msg...)
	l.end()
}

// Error writes msg followed by the error text.
func (l *Logger) Error(tag, msg string, err error) {
	l.begin(tag)
	l.buf = append(l.buf, msg...)
	if err != nil {
		l.buf = append(l.buf, ": "...)
		l.buf = append(l.buf, err.Error()...)
	}
	l.end()
}

// Int writes "msg<n>".
func (l *Logger) Int(tag, msg string, n int64) {
	l.begin(tag)
	l.buf = append(l.buf, msg...)
	l.buf = conv.AppendInt(l.buf, n)
	l.end()
}

// Fixed writes "msg<f>" with the given number of decimals.
func (l *Logger) Fixed(tag, msg string, f float64, decimals int) {
	l.begin(tag)
	l.buf = append(l.buf, msg...)
	l.buf = conv.AppendFixed(l.buf, f, decimals)
	l.end()
}

// WakeCause reports why the processor started.
func (l *Logger) WakeCause(c types.WakeCause) {
	switch c {
	case types.WakeExternalIO:
		l.Info("boot", "Wake-up from external signal with RTC_IO")
	case types.WakeExternalCntl:
		l.Info("boot", "Wake-up from external signal with RTC_CNTL")
	case types.WakeTimer:
		l.Info("boot", "Wake up caused by a timer")
	case types.WakeTouchpad:
		l.Info("boot", "Wake up caused by a touchpad")
	default:
		l.Int("boot", "Wake up not caused by Deep Sleep: ", int64(c))
	}
}
