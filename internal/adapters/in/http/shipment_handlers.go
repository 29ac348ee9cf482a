package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewFulfillmentSet is the request body for set creation.
type NewFulfillmentSet struct {
	RequestID string        `json:"request_id"`
	Ordinal   int           `json:"ordinal"`
	Label     string        `json:"label"`
	Kind      string        `json:"kind"`
	Items     []NewLineItem `json:"items"`
}

// NewLineItem is one manifest entry in a set-creation request.
type NewLineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateFulfillmentSet handles POST /api/v1/fulfillment-sets.
func (s *Server) CreateFulfillmentSet(ctx echo.Context) error {
	var body NewFulfillmentSet
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, err)
	}
	kind, err := parseKind(body.Kind)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]shipment.LineItem, 0, len(body.Items))
	for _, entry := range body.Items {
		item, itemErr := shipment.NewLineItem(entry.Name, entry.Quantity)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}
		items = append(items, item)
	}

	setID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentSetCommand(
		setID, requestID, body.Ordinal, body.Label, kind, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateFulfillmentSet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": setID.String()})
}

// QuoteRequest is the request body for quoting a set.
type QuoteRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Fee    decimal.Decimal `json:"fee"`
}

// QuoteFulfillmentSet handles POST /api/v1/fulfillment-sets/:id/quote.
func (s *Server) QuoteFulfillmentSet(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body QuoteRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewQuoteFulfillmentSetCommand(setID, body.Amount, body.Fee)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.QuoteFulfillmentSet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmRequest is the request body for the customer confirmation.
type ConfirmRequest struct {
	DeliveryDate DateOnly `json:"delivery_date"`
	TimeSlot     string   `json:"time_slot"`
}

// ConfirmFulfillmentSet handles POST /api/v1/fulfillment-sets/:id/confirm.
func (s *Server) ConfirmFulfillmentSet(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body ConfirmRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmFulfillmentSetCommand(setID, body.DeliveryDate.Time, body.TimeSlot)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ConfirmFulfillmentSet.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliveryOrderRequest is the request body for delivery-order generation.
// JoinNumber joins the set onto an existing delivery order; leaving it empty
// issues a fresh number.
type DeliveryOrderRequest struct {
	JoinNumber string `json:"join_number"`
}

// GenerateDeliveryOrder handles POST /api/v1/fulfillment-sets/:id/delivery-order.
func (s *Server) GenerateDeliveryOrder(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body DeliveryOrderRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewGenerateDeliveryOrderCommand(setID, body.JoinNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.GenerateDeliveryOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActorRequest carries the staff member performing a workflow step.
type ActorRequest struct {
	Actor string `json:"actor"`
	Notes string `json:"notes"`
}

// IssuePackingList handles POST /api/v1/fulfillment-sets/:id/packing-list.
func (s *Server) IssuePackingList(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body ActorRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewIssuePackingListCommand(setID, body.Actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.IssuePackingList.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckStock handles POST /api/v1/fulfillment-sets/:id/stock-check.
// Responds with the availability flag; insufficient stock is a warning in
// the response, never a failure.
func (s *Server) CheckStock(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body ActorRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCheckStockCommand(setID, body.Actor, body.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.CheckStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"all_available": result.AllAvailable})
}

// StartPacking handles POST /api/v1/fulfillment-sets/:id/packing.
func (s *Server) StartPacking(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body ActorRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewStartPackingCommand(setID, body.Actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.StartPacking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LoadingRequest is the request body for completing the pack-and-load step.
type LoadingRequest struct {
	Driver  string   `json:"driver"`
	Vehicle string   `json:"vehicle"`
	Photos  []string `json:"photos"`
}

// CompleteLoading handles POST /api/v1/fulfillment-sets/:id/loading.
func (s *Server) CompleteLoading(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body LoadingRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteLoadingCommand(setID, body.Driver, body.Vehicle, body.Photos)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CompleteLoading.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OTPRequest is the request body for issuing a handover code.
type OTPRequest struct {
	Recipient string `json:"recipient"`
}

// SendOTP handles POST /api/v1/fulfillment-sets/:id/otp.
func (s *Server) SendOTP(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body OTPRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSendOTPCommand(setID, body.Recipient)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SendOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// HandoverRequest is the request body for verifying the handover code.
type HandoverRequest struct {
	Code         string `json:"code"`
	SignedBy     string `json:"signed_by"`
	SignatureRef string `json:"signature_ref"`
}

// VerifyOTPAndComplete handles POST /api/v1/fulfillment-sets/:id/handover.
func (s *Server) VerifyOTPAndComplete(ctx echo.Context) error {
	setID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body HandoverRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyOTPAndCompleteCommand(setID, body.Code, body.SignedBy, body.SignatureRef)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.VerifyOTPAndComplete.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingShipments handles GET /api/v1/shipments/pending.
func (s *Server) GetPendingShipments(ctx echo.Context) error {
	query := queries.NewGetPendingShipmentsQuery()

	shipments, err := s.handlers.GetPendingShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingShipment, len(shipments))
	for i, entry := range shipments {
		response[i] = PendingShipment{
			ID:              entry.ID.String(),
			RequestID:       entry.RequestID.String(),
			Ordinal:         entry.Ordinal,
			Label:           entry.Label,
			Status:          entry.Status,
			DeliveryOrderNo: entry.DeliveryOrderNo,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PendingShipment is one uncompleted set in the pending-shipments response.
type PendingShipment struct {
	ID              string `json:"id"`
	RequestID       string `json:"request_id"`
	Ordinal         int    `json:"ordinal"`
	Label           string `json:"label"`
	Status          string `json:"status"`
	DeliveryOrderNo string `json:"delivery_order_no,omitempty"`
}

// GetDeliveryOrder handles GET /api/v1/delivery-orders/:number.
func (s *Server) GetDeliveryOrder(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryOrderQuery(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.handlers.GetDeliveryOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]DeliveryOrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = DeliveryOrderItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			AvailableStock: item.AvailableStock,
		}
	}

	setIDs := make([]string, len(view.SetIDs))
	for i, id := range view.SetIDs {
		setIDs[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, DeliveryOrder{
		DeliveryOrderNo:   view.DeliveryOrderNo,
		RequestID:         view.RequestID.String(),
		Kind:              view.Kind.String(),
		Status:            view.Status.String(),
		SetIDs:            setIDs,
		Labels:            view.Labels,
		Items:             items,
		QuotedAmount:      view.QuotedAmount,
		DeliveryFee:       view.DeliveryFee,
		AllStockAvailable: view.AllStockAvailable,
		OnRental:          view.OnRental,
	})
}

// DeliveryOrder is the merged delivery-order view response.
type DeliveryOrder struct {
	DeliveryOrderNo   string              `json:"delivery_order_no"`
	RequestID         string              `json:"request_id"`
	Kind              string              `json:"kind"`
	Status            string              `json:"status"`
	SetIDs            []string            `json:"set_ids"`
	Labels            []string            `json:"labels"`
	Items             []DeliveryOrderItem `json:"items"`
	QuotedAmount      decimal.Decimal     `json:"quoted_amount"`
	DeliveryFee       decimal.Decimal     `json:"delivery_fee"`
	AllStockAvailable bool                `json:"all_stock_available"`
	OnRental          bool                `json:"on_rental"`
}

// DeliveryOrderItem is one merged manifest line in the view response.
type DeliveryOrderItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	AvailableStock int    `json:"available_stock"`
}

func parseKind(value string) (shipment.Kind, error) {
	switch value {
	case shipment.Delivery.String():
		return shipment.Delivery, nil
	case shipment.Pickup.String():
		return shipment.Pickup, nil
	default:
		return shipment.KindUnknown, errs.NewValueIsInvalidError("kind")
	}
}
