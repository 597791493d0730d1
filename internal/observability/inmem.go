package observability

import "sync"

type Event struct {
	Kind   string  `json:"kind"`
	Label  string  `json:"label,omitempty"`
	Status int     `json:"status,omitempty"`
	DurMs  float64 `json:"dur_ms,omitempty"`
	OK     bool    `json:"ok,omitempty"`
}

type Totals struct {
	Checkouts     map[string]int `json:"checkouts"`
	CartMutations map[string]int `json:"cart_mutations"`
	NotifyOK      int            `json:"notify_ok"`
	NotifyFailed  int            `json:"notify_failed"`
}

// Inmem keeps the last max events plus running totals.
type Inmem struct {
	mu     sync.Mutex
	last   []Event
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
		totals: Totals{
			Checkouts:     map[string]int{},
			CartMutations: map[string]int{},
		},
	}
}

func (m *Inmem) push(e Event) {
	if m.max <= 0 {
		return
	}
	m.last = append(m.last, e)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveCheckout(outcome string, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals.Checkouts[outcome]++
	m.push(Event{Kind: "checkout", Label: outcome, DurMs: durMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(Event{Kind: "http", Label: method + " " + route, Status: status, DurMs: durMs})
}

func (m *Inmem) ObserveNotify(ok bool, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.totals.NotifyOK++
	} else {
		m.totals.NotifyFailed++
	}
	m.push(Event{Kind: "notify", OK: ok, DurMs: durMs})
}

func (m *Inmem) IncCartMutation(op string) {
	m.mu.Lock()
	m.totals.CartMutations[op]++
	m.mu.Unlock()
}

// Snapshot copies the recent events and totals.
func (m *Inmem) Snapshot() ([]Event, Totals) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Totals{
		Checkouts:     make(map[string]int, len(m.totals.Checkouts)),
		CartMutations: make(map[string]int, len(m.totals.CartMutations)),
		NotifyOK:      m.totals.NotifyOK,
		NotifyFailed:  m.totals.NotifyFailed,
	}
	for k, v := range m.totals.Checkouts {
		t.Checkouts[k] = v
	}
	for k, v := range m.totals.CartMutations {
		t.CartMutations[k] = v
	}
	return append([]Event(nil), m.last...), t
}
