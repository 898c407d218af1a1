package rename

import "asciirename/internal/pathutil"

// Mapping records one completed (or simulated) rename.
type Mapping struct {
	From string
	To   string
}

// Tracker holds the ordered, append-only log of renames applied during one
// invocation. Insertion order is application order; entries are never
// mutated or removed.
type Tracker struct {
	log []Mapping
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Resolve applies every recorded mapping, in insertion order, to original.
// Each mapping whose From is a component-wise prefix of the current result
// replaces that prefix with To, keeping the remaining suffix unchanged. A
// path can be rewritten once per renamed ancestor; with no further matches
// the result is stable.
func (t *Tracker) Resolve(original string) string {
	result := original
	for _, m := range t.log {
		if rebased, ok := pathutil.Rebase(result, m.From, m.To); ok {
			result = rebased
		}
	}
	return result
}

// Unresolve is the inverse of Resolve: it applies the recorded mappings in
// reverse order with From and To swapped. In a dry run the filesystem is
// untouched, so unresolving a virtually-renamed path recovers the spelling
// that is actually on disk.
func (t *Tracker) Unresolve(resolved string) string {
	result := resolved
	for i := len(t.log) - 1; i >= 0; i-- {
		if rebased, ok := pathutil.Rebase(result, t.log[i].To, t.log[i].From); ok {
			result = rebased
		}
	}
	return result
}

// Record appends a mapping to the log.
func (t *Tracker) Record(from, to string) {
	t.log = append(t.log, Mapping{From: from, To: to})
}

// Mappings returns a copy of the log in insertion order.
func (t *Tracker) Mappings() []Mapping {
	return append([]Mapping(nil), t.log...)
}
