package returns_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReturnItems(t *testing.T, count int) []returns.ReturnItem {
	t.Helper()
	items := make([]returns.ReturnItem, count)
	names := []string{"Projector", "PA Speaker", "Stage Light"}
	for i := range items {
		item, err := returns.NewReturnItem(kernel.NewUUID(), names[i%len(names)], "AV Equipment", i+1)
		require.NoError(t, err)
		items[i] = item
	}
	return items
}

func makeReturnOrder(t *testing.T, method returns.CollectionMethod, items []returns.ReturnItem) *returns.ReturnOrder {
	t.Helper()
	order, err := returns.NewReturnOrder(
		kernel.NewUUID(),
		returns.Customer{Name: "Aisyah Rahman", Contact: "+60123456789"},
		"RO-2026-0815",
		returns.FullReturn,
		method,
		items,
	)
	require.NoError(t, err)
	return order
}

func assessAll(t *testing.T, order *returns.ReturnOrder, condition returns.Condition) map[kernel.UUID]returns.Assessment {
	t.Helper()
	assessments := make(map[kernel.UUID]returns.Assessment)
	for _, item := range order.Items() {
		assessments[item.ID()] = returns.Assessment{
			Condition:        condition,
			ReturnedQuantity: item.Quantity(),
		}
	}
	return assessments
}

func TestNewReturnOrder(t *testing.T) {
	t.Run("should create a requested order", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 2))

		require.NoError(t, order.Validate())
		assert.Equal(t, returns.Requested, order.Status())
		assert.Equal(t, returns.Courier, order.CollectionMethod())
		assert.Len(t, order.Items(), 2)
		assert.Nil(t, order.GoodsReceiptNumber())
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := returns.NewReturnOrder(
			kernel.NewUUID(),
			returns.Customer{Name: "Aisyah Rahman", Contact: "+60123456789"},
			"RO-2026-0815",
			returns.PartialReturn,
			returns.SelfReturn,
			nil,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "return items")
	})

	t.Run("should fail without customer contact", func(t *testing.T) {
		_, err := returns.NewReturnOrder(
			kernel.NewUUID(),
			returns.Customer{Name: "Aisyah Rahman"},
			"RO-2026-0815",
			returns.FullReturn,
			returns.Courier,
			makeReturnItems(t, 1),
		)
		require.Error(t, err)
	})

	t.Run("should fail with invalid method or type", func(t *testing.T) {
		items := makeReturnItems(t, 1)
		customer := returns.Customer{Name: "A", Contact: "B"}

		_, err := returns.NewReturnOrder(kernel.NewUUID(), customer, "", returns.TypeUnknown, returns.Courier, items)
		require.Error(t, err)

		_, err = returns.NewReturnOrder(kernel.NewUUID(), customer, "", returns.FullReturn, returns.MethodUnknown, items)
		require.Error(t, err)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var order returns.ReturnOrder
		assert.Equal(t, returns.ErrReturnOrderIsNotConstructed, order.Validate())
	})
}

func TestReturnOrder_ApproveAndSchedule(t *testing.T) {
	t.Run("courier requires date and slot", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 1))

		err := order.ApproveAndSchedule(time.Time{}, "")

		require.ErrorIs(t, err, returns.ErrMissingPickupSchedule)
		assert.Equal(t, returns.Requested, order.Status())
	})

	t.Run("courier schedules the pickup", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 1))
		date := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

		require.NoError(t, order.ApproveAndSchedule(date, "09:00-12:00"))

		assert.Equal(t, returns.PickupScheduled, order.Status())
		require.NotNil(t, order.Pickup())
		assert.Equal(t, date, order.Pickup().Date)
	})

	t.Run("self-return approves without a schedule", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))

		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))

		assert.Equal(t, returns.Approved, order.Status())
		assert.Nil(t, order.Pickup())
	})
}

func TestReturnOrder_CourierBranch(t *testing.T) {
	date := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	t.Run("full courier flow from requested to completed", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 2))

		require.NoError(t, order.ApproveAndSchedule(date, "09:00-12:00"))
		assert.Equal(t, returns.PickupScheduled, order.Status())

		require.NoError(t, order.ConfirmPickup("Hafiz", "+60198765432"))
		assert.Equal(t, returns.DriverRecording, order.Status())
		require.NotNil(t, order.Driver())

		require.NoError(t, order.RecordAtOrigin([]string{"origin-1.jpg"}))
		assert.Equal(t, returns.InTransit, order.Status())

		require.NoError(t, order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))
		assert.Equal(t, returns.ReceivedAtWarehouse, order.Status())
		require.NotNil(t, order.ReceivedAt())

		require.NoError(t, order.CompleteInspection("GRN-00071", assessAll(t, order, returns.Good), "all fine", false))
		assert.Equal(t, returns.UnderInspection, order.Status())
		require.NotNil(t, order.GoodsReceiptNumber())
		assert.Equal(t, "GRN-00071", *order.GoodsReceiptNumber())

		require.NoError(t, order.GenerateConditionForm("RCF-00019"))
		assert.Equal(t, returns.SortingComplete, order.Status())

		require.NoError(t, order.NotifyCustomer())
		assert.Equal(t, returns.CustomerNotified, order.Status())
		assert.True(t, order.CustomerNotified())

		require.NoError(t, order.Complete())
		assert.Equal(t, returns.Completed, order.Status())
		assert.True(t, order.InventoryUpdated())
		assert.True(t, order.StatementUpdated())
	})

	t.Run("pickup confirmation requires driver details", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 1))
		require.NoError(t, order.ApproveAndSchedule(date, "09:00-12:00"))

		require.Error(t, order.ConfirmPickup("", "+60198765432"))
		require.Error(t, order.ConfirmPickup("Hafiz", ""))
		assert.Equal(t, returns.PickupScheduled, order.Status())
	})

	t.Run("evidence steps require photos", func(t *testing.T) {
		order := makeReturnOrder(t, returns.Courier, makeReturnItems(t, 1))
		require.NoError(t, order.ApproveAndSchedule(date, "09:00-12:00"))
		require.NoError(t, order.ConfirmPickup("Hafiz", "+60198765432"))

		require.ErrorIs(t, order.RecordAtOrigin(nil), returns.ErrMissingEvidence)

		require.NoError(t, order.RecordAtOrigin([]string{"origin-1.jpg"}))
		require.ErrorIs(t, order.ReceiveAtWarehouse([]string{}), returns.ErrMissingEvidence)
	})
}

func TestReturnOrder_SelfReturnBranch(t *testing.T) {
	t.Run("full self-return flow skips driver states", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))

		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))
		assert.Equal(t, returns.Approved, order.Status())

		require.NoError(t, order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))
		assert.Equal(t, returns.ReceivedAtWarehouse, order.Status())

		require.NoError(t, order.CompleteInspection("GRN-00072", assessAll(t, order, returns.ReadyToReuse), "", false))
		require.NoError(t, order.SkipConditionForm())
		assert.True(t, order.ConditionFormSkipped())
		assert.Nil(t, order.ConditionFormNumber())

		require.NoError(t, order.NotifyCustomer())
		require.NoError(t, order.Complete())
		assert.Equal(t, returns.Completed, order.Status())
	})

	t.Run("driver operations are rejected on the self branch", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))
		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))

		require.Error(t, order.ConfirmPickup("Hafiz", "+60198765432"))
		require.Error(t, order.RecordAtOrigin([]string{"origin-1.jpg"}))
		assert.Equal(t, returns.Approved, order.Status())
	})
}

func TestReturnOrder_CompleteInspection(t *testing.T) {
	receive := func(t *testing.T, count int) *returns.ReturnOrder {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, count))
		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))
		require.NoError(t, order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))
		return order
	}

	t.Run("fails when one item lacks a condition", func(t *testing.T) {
		order := receive(t, 3)
		assessments := assessAll(t, order, returns.Good)
		for id := range assessments {
			delete(assessments, id)
			break
		}

		err := order.CompleteInspection("GRN-00073", assessments, "", false)

		require.ErrorIs(t, err, returns.ErrIncompleteInspection)
		assert.Equal(t, returns.ReceivedAtWarehouse, order.Status())
		assert.Nil(t, order.GoodsReceiptNumber())
	})

	t.Run("succeeds with all items assessed", func(t *testing.T) {
		order := receive(t, 3)

		require.NoError(t, order.CompleteInspection("GRN-00073", assessAll(t, order, returns.Damaged), "scuffed", true))

		assert.Equal(t, returns.UnderInspection, order.Status())
		require.NotNil(t, order.GoodsReceiptNumber())
		assert.NotEmpty(t, *order.GoodsReceiptNumber())
		assert.True(t, order.Inspection().HasExternalGoods)
		for _, item := range order.Items() {
			assert.Equal(t, returns.Damaged, item.Condition())
		}
	})

	t.Run("rejects unset condition in an assessment", func(t *testing.T) {
		order := receive(t, 1)
		assessments := assessAll(t, order, returns.Good)
		for id, a := range assessments {
			a.Condition = returns.ConditionUnset
			assessments[id] = a
		}

		err := order.CompleteInspection("GRN-00074", assessments, "", false)

		require.Error(t, err)
	})

	t.Run("rejects returned quantity above declared", func(t *testing.T) {
		order := receive(t, 1)
		assessments := make(map[kernel.UUID]returns.Assessment)
		for _, item := range order.Items() {
			assessments[item.ID()] = returns.Assessment{
				Condition:        returns.Good,
				ReturnedQuantity: item.Quantity() + 1,
			}
		}

		require.Error(t, order.CompleteInspection("GRN-00075", assessments, "", false))
	})
}

func TestReturnOrder_Dispute(t *testing.T) {
	t.Run("dispute requires warehouse receipt first", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))

		require.Error(t, order.RaiseDispute("items were fine when returned"))
	})

	t.Run("dispute is recorded after receipt", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))
		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))
		require.NoError(t, order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))
		require.NoError(t, order.CompleteInspection("GRN-00076", assessAll(t, order, returns.Damaged), "", false))

		require.NoError(t, order.RaiseDispute("damage was pre-existing"))

		require.NotNil(t, order.Dispute())
		assert.Equal(t, "damage was pre-existing", order.Dispute().Reason)
	})
}

func TestReturnOrder_TerminalState(t *testing.T) {
	t.Run("completed order rejects every operation", func(t *testing.T) {
		order := makeReturnOrder(t, returns.SelfReturn, makeReturnItems(t, 1))
		require.NoError(t, order.ApproveAndSchedule(time.Time{}, ""))
		require.NoError(t, order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))
		require.NoError(t, order.CompleteInspection("GRN-00077", assessAll(t, order, returns.Good), "", false))
		require.NoError(t, order.SkipConditionForm())
		require.NoError(t, order.NotifyCustomer())
		require.NoError(t, order.Complete())

		require.ErrorIs(t, order.Complete(), returns.ErrOrderAlreadyCompleted)
		require.ErrorIs(t, order.NotifyCustomer(), returns.ErrOrderAlreadyCompleted)
		require.ErrorIs(t, order.ReceiveAtWarehouse([]string{"x.jpg"}), returns.ErrOrderAlreadyCompleted)
		require.ErrorIs(t, order.RaiseDispute("too late"), returns.ErrOrderAlreadyCompleted)
		assert.Equal(t, returns.Completed, order.Status())
	})
}

func TestRestoreReturnOrder(t *testing.T) {
	t.Run("restores full workflow state", func(t *testing.T) {
		items := makeReturnItems(t, 1)
		grn := "GRN-00078"
		received := time.Now().UTC()

		order, err := returns.RestoreReturnOrder(
			kernel.NewUUID(),
			returns.Customer{Name: "Aisyah Rahman", Contact: "+60123456789"},
			"RO-2026-0815",
			returns.FullReturn,
			returns.Courier,
			items,
			returns.UnderInspection,
			&grn, nil, false,
			&returns.PickupSchedule{Date: received, TimeSlot: "09:00-12:00"},
			&returns.DriverAssignment{Name: "Hafiz", Contact: "+60198765432", ConfirmedAt: received},
			&returns.Inspection{CompletedAt: received},
			nil,
			[]string{"origin-1.jpg"}, []string{"receipt-1.jpg"},
			&received, nil, nil,
			false, false, false,
		)

		require.NoError(t, err)
		assert.Equal(t, returns.UnderInspection, order.Status())
		assert.Equal(t, "GRN-00078", *order.GoodsReceiptNumber())
		assert.Equal(t, "Hafiz", order.Driver().Name)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := returns.RestoreReturnOrder(
			kernel.NewUUID(),
			returns.Customer{Name: "A", Contact: "B"},
			"", returns.FullReturn, returns.SelfReturn,
			makeReturnItems(t, 1),
			returns.Unknown,
			nil, nil, false, nil, nil, nil, nil, nil, nil, nil, nil, nil,
			false, false, false,
		)
		require.Error(t, err)
	})
}
