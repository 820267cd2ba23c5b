package treeval

// FailureMode selects what happens when a problem is recorded during
// extraction.
type FailureMode int

const (
	// FailImmediately stops at the first recorded problem, returning an
	// ExtractionError right away.
	FailImmediately FailureMode = iota
	// CollectAll keeps accumulating problems on the recording context until
	// MaxFailures is reached, then returns them all at once.
	CollectAll
)

// DuplicateKeyAction selects what happens when an object key repeats while a
// tree is materialized from text.
type DuplicateKeyAction int

const (
	// DuplicateKeyReplace keeps the last-encountered value.
	// `{"a":1,"a":2,"a":3}` ends with `{"a":3}`.
	DuplicateKeyReplace DuplicateKeyAction = iota
	// DuplicateKeyIgnore keeps the first-encountered value.
	// `{"a":1,"a":2,"a":3}` ends with `{"a":1}`.
	DuplicateKeyIgnore
	// DuplicateKeyError fails parsing with a duplicate_key problem.
	DuplicateKeyError
)

// ExtractOptions bundles extraction and parse policy. The zero value is not
// meaningful; start from DefaultOptions and chain the With* setters, each of
// which returns a modified copy.
type ExtractOptions struct {
	failureMode    FailureMode
	maxFailures    int
	onDuplicateKey DuplicateKeyAction
	maxDepth       int
	maxBytes       int64
}

// DefaultOptions returns the default policy: fail immediately, at most 10
// collected failures, duplicate keys replaced, no depth or size caps.
func DefaultOptions() ExtractOptions {
	return ExtractOptions{maxFailures: 10}
}

// FailureMode reports the configured failure mode.
func (o ExtractOptions) FailureMode() FailureMode { return o.failureMode }

// WithFailureMode returns a copy with the failure mode set.
func (o ExtractOptions) WithFailureMode(m FailureMode) ExtractOptions {
	o.failureMode = m
	return o
}

// MaxFailures reports the collected-failure cap. It is only meaningful under
// CollectAll. A cap of 0 is legal and degenerates to escalating on the very
// first recorded problem.
func (o ExtractOptions) MaxFailures() int { return o.maxFailures }

// WithMaxFailures returns a copy with the collected-failure cap set. Each
// collected problem is held in memory until escalation, so keep the cap
// reasonable.
func (o ExtractOptions) WithMaxFailures(n int) ExtractOptions {
	if n < 0 {
		n = 0
	}
	o.maxFailures = n
	return o
}

// OnDuplicateKey reports the configured duplicate-key action.
func (o ExtractOptions) OnDuplicateKey() DuplicateKeyAction { return o.onDuplicateKey }

// WithOnDuplicateKey returns a copy with the duplicate-key action set.
func (o ExtractOptions) WithOnDuplicateKey(a DuplicateKeyAction) ExtractOptions {
	o.onDuplicateKey = a
	return o
}

// MaxDepth reports the parse-time container nesting cap. 0 means unlimited.
func (o ExtractOptions) MaxDepth() int { return o.maxDepth }

// WithMaxDepth returns a copy with the parse-time nesting cap set.
func (o ExtractOptions) WithMaxDepth(n int) ExtractOptions {
	if n < 0 {
		n = 0
	}
	o.maxDepth = n
	return o
}

// MaxBytes reports the parse-time input size cap in bytes. 0 means unlimited.
func (o ExtractOptions) MaxBytes() int64 { return o.maxBytes }

// WithMaxBytes returns a copy with the parse-time size cap set.
func (o ExtractOptions) WithMaxBytes(n int64) ExtractOptions {
	if n < 0 {
		n = 0
	}
	o.maxBytes = n
	return o
}

// lastOpt applies the repository-wide variadic-options convention: the last
// options value wins, defaults otherwise.
func lastOpt(opts []ExtractOptions) ExtractOptions {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DefaultOptions()
}
