package xdr

// DefaultMaxDepth and DefaultMaxLength set the limits spec.md §3 requires
// every decode to carry: recursion depth of composite codecs and cumulative
// bytes consumed, respectively.
const (
	DefaultMaxDepth  = 512
	DefaultMaxLength = 256 * 1024 * 1024 // 256 MiB
)

// Limits bounds a single decode operation. Zero value is invalid; use
// DefaultLimits().
type Limits struct {
	MaxDepth  int
	MaxLength int64
}

// DefaultLimits returns the spec-mandated defaults.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, MaxLength: DefaultMaxLength}
}

// tracker accumulates consumed bytes and tracks recursion depth for a single
// reader or writer instance. It is not safe for concurrent use: a reader or
// writer is owned by exactly one caller for the duration of an operation
// (spec.md §5).
type tracker struct {
	limits    Limits
	consumed  int64
	depth     int
	maxDepthS int
}

func newTracker(l Limits) *tracker {
	return &tracker{limits: l}
}

func (t *tracker) addBytes(n int) error {
	t.consumed += int64(n)
	if t.consumed > t.limits.MaxLength {
		return newErrf(ByteLimitExceeded, "consumed %d bytes exceeds limit %d", t.consumed, t.limits.MaxLength)
	}
	return nil
}

// enter increments recursion depth on composite entry; the returned func
// decrements it on exit. Call as `done, err := t.enter()` and then
// `defer done()` once err is nil.
func (t *tracker) enter() (func(), error) {
	t.depth++
	if t.depth > t.limits.MaxDepth {
		return func() { t.depth-- }, newErrf(DepthLimitExceeded, "depth %d exceeds limit %d", t.depth, t.limits.MaxDepth)
	}
	return func() { t.depth-- }, nil
}
