// Package logging builds the zerolog logger used by the ecsign CLI and keeps
// private key material out of log output.
package logging

import (
	"io"
	"regexp"

	"github.com/rs/zerolog"
)

// RedactedValue replaces sensitive data in log output.
const RedactedValue = "[REDACTED]"

var sensitivePatterns = []*regexp.Regexp{
	// whole PEM private key blocks, including JSON-escaped newlines
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----(?s:.*?)-----END [A-Z ]*PRIVATE KEY-----`),
	// a dangling header when the block was truncated
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),
	regexp.MustCompile(`(?i)(passphrase|password)\s*[:=]\s*["']?[^\s"',}]+["']?`),
}

// New returns a logger writing human-readable lines to w. Debug output is
// enabled by verbose, and quiet limits output to errors.
func New(w io.Writer, verbose, quiet bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        NewFilteringWriter(w),
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(console).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// FilterSensitiveValue replaces private key blocks and passphrase assignments
// in s with RedactedValue.
func FilterSensitiveValue(s string) string {
	for _, p := range sensitivePatterns {
		s = p.ReplaceAllString(s, RedactedValue)
	}
	return s
}

// FilteringWriter redacts sensitive data before handing it to the wrapped writer.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success so callers do not
// treat a redacted, shorter write as a short write.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
