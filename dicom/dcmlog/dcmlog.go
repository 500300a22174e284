// Package dcmlog is the process-wide logging facility: a verbosity level
// and a log sink, both intended to be set once at startup and read
// thereafter. It is not a general-purpose logging API; it exists so the
// parser and filehandle can report recoverable anomalies (a BOT fallback
// scan, an unrecognized character set, a tag defaulted to an alternative
// VR) without forcing every caller to thread a logger through every call.
//
// Grounded in the teacher's dicomlog-style global (odincare-odicom's
// dicomlog package), rebuilt on logrus directly rather than wrapping the
// standard log package, since logrus is what the rest of the pack reaches
// for when a DICOM library needs leveled logging (odincare-odicom's
// dicomio/charset.go, writer.go, element.go all log through it).
package dcmlog

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var level int32

// Sink is the function invoked by Vprintf once the level threshold is met.
// Defaults to logrus.Warnf.
var sink = logrus.Warnf

// SetLevel sets the verbosity level. Higher is more verbose; a negative
// level disables Vprintf entirely. Not safe to call concurrently with
// Vprintf from another goroutine after startup.
func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

// Level returns the current verbosity level.
func Level() int {
	return int(atomic.LoadInt32(&level))
}

// SetSink replaces the function Vprintf calls once level is met. Intended
// to be called once at startup; not safe to change concurrently with
// in-flight Vprintf calls.
func SetSink(fn func(format string, args ...interface{})) {
	sink = fn
}

// Vprintf logs through the configured sink when the configured level is at
// least l, mirroring the source's threshold-gated verbose logging.
func Vprintf(l int, format string, args ...interface{}) {
	if Level() >= l {
		sink(format, args...)
	}
}
