package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyOutput     = "output"
	KeyKind       = "kind"
	KeyTemplate   = "template"
	KeySource     = "source"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr    { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr      { return slog.String(KeyOutput, p) }
func Kind(k string) slog.Attr        { return slog.String(KeyKind, k) }
func Template(name string) slog.Attr { return slog.String(KeyTemplate, name) }
func Source(dir string) slog.Attr    { return slog.String(KeySource, dir) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
