package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoSetsToAggregate is returned when BuildDeliveryOrderView receives an
	// empty or nil slice.
	ErrNoSetsToAggregate = errors.New("at least one fulfillment set is required to build a delivery order view")

	// ErrMissingDeliveryOrder is returned when a set has no delivery-order
	// identifier yet and therefore cannot participate in aggregation.
	ErrMissingDeliveryOrder = errors.New("fulfillment set has no delivery order number")

	// ErrMixedDeliveryOrders is returned when the supplied sets do not all
	// share the same delivery-order identifier.
	ErrMixedDeliveryOrders = errors.New("fulfillment sets belong to different delivery orders")
)

// MergedLineItem is one line of the combined manifest across all sets of a
// delivery order. Quantities are summed per item name; available stock keeps
// the highest level recorded by any member set.
type MergedLineItem struct {
	Name           string
	Quantity       int
	AvailableStock int
}

// IsAvailable reports whether recorded stock covers the combined quantity.
func (m MergedLineItem) IsAvailable() bool {
	return m.AvailableStock >= m.Quantity
}

// DeliveryOrderView is the read model presented for one delivery order: a
// merge of every fulfillment set that shares the delivery-order identifier.
//
// Merge rules:
//   - Status is the most advanced member status under the priority order;
//     on a tie the earliest member in slice order wins.
//   - Items are merged by name, quantities summed, stock levels maxed.
//   - Quoted amounts and delivery fees are summed across members.
//   - The schedule is the earliest confirmed date among members.
//   - Each milestone shows the latest record any member produced.
//   - Descriptive fields (request, kind) come from the leading member.
type DeliveryOrderView struct {
	DeliveryOrderNo string
	RequestID       kernel.UUID
	Kind            shipment.Kind
	Status          shipment.Status

	SetIDs []kernel.UUID
	Labels []string
	Items  []MergedLineItem

	QuotedAmount decimal.Decimal
	DeliveryFee  decimal.Decimal

	Schedule    *shipment.Schedule
	PackingList *shipment.PackingList
	StockCheck  *shipment.StockCheck
	Loading     *shipment.Loading
	Handover    *shipment.Handover

	AllStockAvailable bool
	OnRental          bool
}

// OrderAggregator is a domain service that folds the fulfillment sets
// sharing a delivery-order identifier into a single DeliveryOrderView.
// Aggregation is a pure read: no member set is mutated.
type OrderAggregator struct{}

// NewOrderAggregator creates a new OrderAggregator instance.
func NewOrderAggregator() OrderAggregator {
	return OrderAggregator{}
}

// BuildDeliveryOrderView merges the supplied sets into one view.
//
// Every set must be constructed, carry a delivery-order number, and all
// numbers must agree; otherwise ErrMissingDeliveryOrder or
// ErrMixedDeliveryOrders is returned. The input order is significant only
// for tie-breaking: the first set holding the most advanced status leads.
func (a OrderAggregator) BuildDeliveryOrderView(sets []*shipment.FulfillmentSet) (DeliveryOrderView, error) {
	if len(sets) == 0 {
		return DeliveryOrderView{}, ErrNoSetsToAggregate
	}

	for _, set := range sets {
		if err := set.Validate(); err != nil {
			return DeliveryOrderView{}, err
		}
		if set.DeliveryOrderNo() == nil {
			return DeliveryOrderView{}, ErrMissingDeliveryOrder
		}
		if *set.DeliveryOrderNo() != *sets[0].DeliveryOrderNo() {
			return DeliveryOrderView{}, ErrMixedDeliveryOrders
		}
	}

	leader := sets[0]
	for _, set := range sets[1:] {
		if set.Status().Priority() > leader.Status().Priority() {
			leader = set
		}
	}

	view := DeliveryOrderView{
		DeliveryOrderNo:   *leader.DeliveryOrderNo(),
		RequestID:         leader.RequestID(),
		Kind:              leader.Kind(),
		Status:            leader.Status().Normalize(),
		QuotedAmount:      decimal.Zero,
		DeliveryFee:       decimal.Zero,
		AllStockAvailable: true,
	}

	for _, set := range sets {
		view.SetIDs = append(view.SetIDs, set.ID())
		view.Labels = append(view.Labels, set.Label())
		if amount := set.QuotedAmount(); amount != nil {
			view.QuotedAmount = view.QuotedAmount.Add(*amount)
		}
		if fee := set.DeliveryFee(); fee != nil {
			view.DeliveryFee = view.DeliveryFee.Add(*fee)
		}
		if set.OnRental() {
			view.OnRental = true
		}

		view.Schedule = earliestSchedule(view.Schedule, set.Schedule())
		view.PackingList = latestPackingList(view.PackingList, set.PackingList())
		view.StockCheck = latestStockCheck(view.StockCheck, set.StockCheck())
		view.Loading = latestLoading(view.Loading, set.Loading())
		view.Handover = latestHandover(view.Handover, set.Handover())
	}

	view.Items = mergeItems(sets)
	for _, item := range view.Items {
		if !item.IsAvailable() {
			view.AllStockAvailable = false
			break
		}
	}

	return view, nil
}

// mergeItems combines all manifests by item name, preserving first-seen
// order. Quantities add up across sets; the stock level keeps the maximum
// any set recorded for that item.
func mergeItems(sets []*shipment.FulfillmentSet) []MergedLineItem {
	var merged []MergedLineItem
	index := make(map[string]int)

	for _, set := range sets {
		for _, item := range set.Items() {
			i, seen := index[item.Name()]
			if !seen {
				index[item.Name()] = len(merged)
				merged = append(merged, MergedLineItem{
					Name:           item.Name(),
					Quantity:       item.Quantity(),
					AvailableStock: item.AvailableStock(),
				})
				continue
			}
			merged[i].Quantity += item.Quantity()
			merged[i].AvailableStock = max(merged[i].AvailableStock, item.AvailableStock())
		}
	}

	return merged
}

func earliestSchedule(current, candidate *shipment.Schedule) *shipment.Schedule {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.Date.Before(current.Date) {
		return candidate
	}
	return current
}

func latestPackingList(current, candidate *shipment.PackingList) *shipment.PackingList {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.IssuedAt.After(current.IssuedAt) {
		return candidate
	}
	return current
}

func latestStockCheck(current, candidate *shipment.StockCheck) *shipment.StockCheck {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.CheckedAt.After(current.CheckedAt) {
		return candidate
	}
	return current
}

func latestLoading(current, candidate *shipment.Loading) *shipment.Loading {
	if candidate == nil {
		return current
	}
	if current == nil || loadingTime(candidate).After(loadingTime(current)) {
		return candidate
	}
	return current
}

func loadingTime(l *shipment.Loading) time.Time {
	if l.LoadedAt != nil {
		return *l.LoadedAt
	}
	return l.StartedAt
}

func latestHandover(current, candidate *shipment.Handover) *shipment.Handover {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.VerifiedAt.After(current.VerifiedAt) {
		return candidate
	}
	return current
}
