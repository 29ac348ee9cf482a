// Package returns contains the inbound fulfillment aggregate: the
// ReturnOrder state machine driving a return request from submission through
// collection, warehouse receipt, per-item inspection and completion. The
// collection method declared on the request selects between the courier
// branch (pickup scheduling, driver recording, transit) and the shorter
// self-return branch.
package returns
