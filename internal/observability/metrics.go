package observability

type Metrics interface {
	ObserveCheckout(outcome string, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveNotify(ok bool, durMs float64)
	IncCartMutation(op string)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveCheckout(string, float64)          {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveNotify(bool, float64)              {}
func (Noop) IncCartMutation(string)                   {}

// Checkout outcomes.
const (
	OutcomePlaced  = "placed"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
	OutcomePending = "pending"
)
