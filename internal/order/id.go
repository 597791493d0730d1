package order

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

const DefaultIDPrefix = "BB-"

// IDGenerator derives order ids from the creation time in milliseconds,
// base36-encoded. Two orders in the same millisecond get consecutive values.
type IDGenerator struct {
	mu     sync.Mutex
	prefix string
	last   int64
}

func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

func (g *IDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.prefix + strings.ToUpper(strconv.FormatInt(ms, 36))
}
