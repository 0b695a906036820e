package logger

import (
	"log/slog"
	"time"
)

// Attribute keys shared by every package.
const (
	KeyError        = "error"
	KeyRequestID    = "request_id"
	KeyClientIP     = "client_ip"
	KeyComponent    = "component"
	KeyBlock        = "block"
	KeyDuration     = "duration"
	KeyTaglineCount = "tagline_count"
)

// Error logs err under "error". A nil error yields an empty attribute,
// which slog skips.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// RequestID is empty for an empty id.
func RequestID(id string) slog.Attr { return nonEmpty(KeyRequestID, id) }

// ClientIP is empty for an empty address.
func ClientIP(ip string) slog.Attr { return nonEmpty(KeyClientIP, ip) }

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }

func Block(name string) slog.Attr { return slog.String(KeyBlock, name) }

func Duration(d time.Duration) slog.Attr { return slog.Duration(KeyDuration, d) }

// TaglineCount records how many candidates a selection had.
func TaglineCount(n int) slog.Attr { return slog.Int(KeyTaglineCount, n) }

func nonEmpty(key, v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String(key, v)
}
