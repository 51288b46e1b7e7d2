package model

import (
	"fmt"
)

// Score is the ranking score of a hit. Higher scores are better.
type Score uint64

// DocID identifies the document a hit refers to.
type DocID uint32

// Hit is a scored reference to a document.
// It is a plain value; equality (==) compares both fields.
type Hit struct {
	Score Score
	Doc   DocID
}

// String returns a string representation of the Hit.
func (h Hit) String() string {
	return fmt.Sprintf("Hit(%d:%d)", h.Doc, h.Score)
}

// TieBreak names the policy used to order hits with equal scores.
type TieBreak uint8

const (
	// TiesUnspecified consults the score only. Hits with equal scores are
	// mutually unordered; which of them is retained depends on input order
	// and internal layout.
	TiesUnspecified TieBreak = iota

	// TiesByDocAsc breaks equal scores by ascending DocID, i.e. the lower
	// document identifier wins. The retained set is then deterministic.
	TiesByDocAsc
)

// String returns the policy name.
func (t TieBreak) String() string {
	switch t {
	case TiesUnspecified:
		return "unspecified"
	case TiesByDocAsc:
		return "doc-asc"
	default:
		return fmt.Sprintf("TieBreak(%d)", uint8(t))
	}
}

// Order is the retain-largest-by-score comparator.
// The zero value uses TiesUnspecified.
type Order struct {
	ties TieBreak
}

// NewOrder returns an Order using the given tie policy.
func NewOrder(ties TieBreak) Order {
	return Order{ties: ties}
}

// TieBreak returns the tie policy of the order.
func (o Order) TieBreak() TieBreak {
	return o.ties
}

// Better reports whether a strictly outranks b.
func (o Order) Better(a, b Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if o.ties == TiesByDocAsc {
		return a.Doc < b.Doc
	}
	return false
}

// Worse reports whether a is strictly outranked by b.
func (o Order) Worse(a, b Hit) bool {
	return o.Better(b, a)
}

// Compare orders hits for a descending result list: it returns a negative
// number when a ranks before b, a positive number when b ranks before a and
// zero when the two are tied under the policy.
func (o Order) Compare(a, b Hit) int {
	switch {
	case o.Better(a, b):
		return -1
	case o.Better(b, a):
		return 1
	default:
		return 0
	}
}
