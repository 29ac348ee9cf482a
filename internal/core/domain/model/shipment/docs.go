// Package shipment contains the outbound fulfillment aggregate: the
// FulfillmentSet state machine that drives one shippable unit of a customer
// delivery request from quotation through packing, loading, and customer
// handover. The Status type also carries the fixed priority order used to
// resolve the combined status of a consolidated delivery order.
package shipment
