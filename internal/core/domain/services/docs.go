// Package services provides domain services that operate across multiple
// fulfillment sets where the logic does not belong to a single aggregate.
//
// The package includes:
//   - OrderAggregator: folds the sets sharing a delivery-order identifier
//     into one DeliveryOrderView read model
//   - SequentialGate: decides whether a set may enter the quotation flow
//     based on its predecessor's progress
//
// Both services are stateless and pure: they inspect aggregates without
// mutating them, leaving persistence to the application layer.
package services
