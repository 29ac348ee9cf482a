package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func lineItems(t *testing.T, name string, qty int) []shipment.LineItem {
	t.Helper()
	item, err := shipment.NewLineItem(name, qty)
	require.NoError(t, err)
	return []shipment.LineItem{item}
}

func pendingSet(t *testing.T, requestID kernel.UUID, ordinal int) *shipment.FulfillmentSet {
	t.Helper()
	set, err := shipment.NewFulfillmentSet(
		kernel.NewUUID(), requestID, ordinal, "Set", shipment.Delivery,
		lineItems(t, "Scaffolding Frame", 10))
	require.NoError(t, err)
	return set
}

func confirmedSet(t *testing.T, requestID kernel.UUID, ordinal int) *shipment.FulfillmentSet {
	t.Helper()
	set := pendingSet(t, requestID, ordinal)
	require.NoError(t, set.Quote(decimal.NewFromInt(1000), decimal.NewFromInt(50)))
	require.NoError(t, set.ConfirmByCustomer(
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "09:00-12:00"))
	return set
}

func packingListIssuedSet(t *testing.T) *shipment.FulfillmentSet {
	t.Helper()
	set := confirmedSet(t, kernel.NewUUID(), 0)
	require.NoError(t, set.AssignDeliveryOrder("DO-0001"))
	require.NoError(t, set.IssuePackingList("PL-0001", "warehouse"))
	return set
}

func inTransitSet(t *testing.T) *shipment.FulfillmentSet {
	t.Helper()
	set := packingListIssuedSet(t)
	_, err := set.CheckStock(map[string]int{"Scaffolding Frame": 10}, "warehouse", "")
	require.NoError(t, err)
	require.NoError(t, set.StartPacking("warehouse"))
	require.NoError(t, set.CompleteLoading("Rahim", "WXY 1234", nil))
	return set
}

func returnItems(t *testing.T) []returns.ReturnItem {
	t.Helper()
	item, err := returns.NewReturnItem(kernel.NewUUID(), "Scaffolding Frame", "Frames", 10)
	require.NoError(t, err)
	return []returns.ReturnItem{item}
}

func requestedReturn(t *testing.T, method returns.CollectionMethod) *returns.ReturnOrder {
	t.Helper()
	order, err := returns.NewReturnOrder(
		kernel.NewUUID(),
		returns.Customer{Name: "Aina Binti Salleh", Contact: "+60123456789"},
		"RO-2026-041", returns.FullReturn, method, returnItems(t))
	require.NoError(t, err)
	return order
}

func receivedReturn(t *testing.T) *returns.ReturnOrder {
	t.Helper()
	order := requestedReturn(t, returns.SelfReturn)
	require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))
	require.NoError(t, order.ReceiveAtWarehouse([]string{"wh-1.jpg"}))
	return order
}

func inspectedReturn(t *testing.T) *returns.ReturnOrder {
	t.Helper()
	order := receivedReturn(t)
	assessments := make(map[kernel.UUID]returns.Assessment)
	for _, item := range order.Items() {
		assessments[item.ID()] = returns.Assessment{
			Condition:        returns.Good,
			ReturnedQuantity: item.Quantity(),
		}
	}
	require.NoError(t, order.CompleteInspection("GRN-0001", assessments, "", false))
	return order
}
