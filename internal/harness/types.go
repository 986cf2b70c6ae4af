package harness

// TraceEvent records how one scenario call was analyzed.
type TraceEvent struct {
	Seq int `json:"seq"`

	// Call is the unresolved call as written, e.g. "day(order_date)".
	Call string `json:"call"`

	// Function is the canonical name of the resolved function.
	Function string `json:"function,omitempty"`

	// Expr is the rendered resolved expression.
	Expr string `json:"expr,omitempty"`

	// Zone is set for date/time functions only.
	Zone string `json:"zone,omitempty"`

	// Error is the failure message without location.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses match.
	Pass bool `json:"pass"`

	// Trace contains one event per call, in scenario order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event, numbering it after the previous one.
func (r *Result) AddTrace(ev TraceEvent) {
	ev.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, ev)
}
