package observability

import (
	"fmt"
	"net/http"
)

// AppendServerTiming adds one Server-Timing entry. Non-positive durations are
// left out; an entry with neither duration nor description is skipped.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	entry := name
	if durMs > 0 {
		entry += fmt.Sprintf(";dur=%.2f", durMs)
	}
	if desc != "" {
		entry += fmt.Sprintf(";desc=%q", desc)
	}
	if entry == name {
		return
	}
	w.Header().Add("Server-Timing", entry)
}

func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, fmt.Sprintf("%.2f", ms))
	}
}
