package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
)

// ErrPredecessorNotFound is returned when the candidate set has an ordinal
// above zero but none of the supplied siblings carries the preceding
// ordinal, so the gate cannot decide.
var ErrPredecessorNotFound = errors.New("preceding fulfillment set not found among siblings")

// SequentialGate is a domain service enforcing the order in which sibling
// fulfillment sets of one customer request may enter the quotation flow.
//
// Business rules:
//   - The first set (ordinal 0) may always advance.
//   - Any later set may advance only once its immediate predecessor has
//     been handed off: customer confirmed or further along.
//   - Only the immediate predecessor is consulted; earlier gaps in the
//     chain are the predecessor's own gating problem.
type SequentialGate struct{}

// NewSequentialGate creates a new SequentialGate instance.
func NewSequentialGate() SequentialGate {
	return SequentialGate{}
}

// CanAdvance reports whether the candidate set may enter the quotation flow.
//
// The siblings slice holds the other sets of the same request, in any
// order; the candidate itself may be present and is ignored. Returns
// ErrPredecessorNotFound when the immediate predecessor is absent.
func (g SequentialGate) CanAdvance(candidate *shipment.FulfillmentSet, siblings []*shipment.FulfillmentSet) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, err
	}

	if candidate.Ordinal() == 0 {
		return true, nil
	}

	for _, sibling := range siblings {
		if err := sibling.Validate(); err != nil {
			return false, err
		}
		if sibling.IsEqual(candidate) {
			continue
		}
		if sibling.RequestID().IsEqual(candidate.RequestID()) && sibling.Ordinal() == candidate.Ordinal()-1 {
			return sibling.Status().HandedOff(), nil
		}
	}

	return false, ErrPredecessorNotFound
}
