package ports

import (
	"context"
)

// DocumentNumbers issues the sequential business document identifiers used
// across the fulfillment workflows. Numbers are unique and monotonically
// increasing per document type; gaps are acceptable, duplicates are not.
type DocumentNumbers interface {
	// NextPackingList returns the next packing-list number (PL-prefixed).
	NextPackingList(ctx context.Context) (string, error)

	// NextDeliveryOrder returns the next delivery-order number (DO-prefixed).
	NextDeliveryOrder(ctx context.Context) (string, error)

	// NextGoodsReceipt returns the next goods-received-note number
	// (GRN-prefixed), issued when a return completes inspection.
	NextGoodsReceipt(ctx context.Context) (string, error)

	// NextConditionForm returns the next returned-condition-form number
	// (RCF-prefixed).
	NextConditionForm(ctx context.Context) (string, error)
}
