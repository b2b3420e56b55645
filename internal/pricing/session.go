package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quotation is the in-memory aggregate an edit session operates on: the two
// ordered line collections plus the markup parameters. Everything the summary
// needs, nothing the transport layer cares about.
type Quotation struct {
	Products  []LineItem
	Ancillary []LineItem
	Params    Parameters
}

// Clone deep-copies the aggregate so the committed snapshot can never be
// mutated through the working copy.
func (q *Quotation) Clone() *Quotation {
	c := &Quotation{
		Products:  make([]LineItem, len(q.Products)),
		Ancillary: make([]LineItem, len(q.Ancillary)),
		Params:    q.Params,
	}
	for i, li := range q.Products {
		c.Products[i] = li.clone()
	}
	for i, li := range q.Ancillary {
		c.Ancillary[i] = li.clone()
	}
	return c
}

// Summary recomputes the full layered breakdown. Recomputation is total and
// unconditional — every edit re-runs it over the complete item list.
func (q *Quotation) Summary() CostSummary {
	return ComputeCostSummary(q.Products, q.Ancillary, q.Params)
}

// EditSession holds the committed (last saved) and working (live) copies of a
// quotation. Edits touch only the working copy; a line mid-edit and the
// committed values of every other line feed the same running summary.
type EditSession struct {
	committed *Quotation
	working   *Quotation
	dirty     bool
}

// NewEditSession snapshots the given aggregate as both the committed and
// working state.
func NewEditSession(q *Quotation) *EditSession {
	return &EditSession{committed: q.Clone(), working: q.Clone()}
}

// Working exposes the live copy for rendering.
func (s *EditSession) Working() *Quotation { return s.working }

// Dirty reports whether any edit happened since the last save or discard.
func (s *EditSession) Dirty() bool { return s.dirty }

// EditProduct applies a field edit to the i-th product line and returns the
// recomputed summary.
func (s *EditSession) EditProduct(i int, field Field, value decimal.Decimal) (CostSummary, error) {
	if i < 0 || i >= len(s.working.Products) {
		return CostSummary{}, fmt.Errorf("pricing: product line %d out of range", i)
	}
	s.working.Products[i] = RecomputeLineItem(s.working.Products[i], field, value)
	s.dirty = true
	return s.working.Summary(), nil
}

// EditAncillary applies a field edit to the i-th ancillary line and returns
// the recomputed summary.
func (s *EditSession) EditAncillary(i int, field Field, value decimal.Decimal) (CostSummary, error) {
	if i < 0 || i >= len(s.working.Ancillary) {
		return CostSummary{}, fmt.Errorf("pricing: ancillary line %d out of range", i)
	}
	s.working.Ancillary[i] = RecomputeLineItem(s.working.Ancillary[i], field, value)
	s.dirty = true
	return s.working.Summary(), nil
}

// SetParameters replaces the markup parameters and returns the recomputed
// summary.
func (s *EditSession) SetParameters(p Parameters) CostSummary {
	s.working.Params = p
	s.dirty = true
	return s.working.Summary()
}

// Discard throws away the working copy and restores an exact deep copy of the
// last committed state.
func (s *EditSession) Discard() {
	s.working = s.committed.Clone()
	s.dirty = false
}

// Promote commits the working copy after a successful save.
func (s *EditSession) Promote() {
	s.committed = s.working.Clone()
	s.dirty = false
}
