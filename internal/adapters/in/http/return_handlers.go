package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewReturnOrder is the request body for return-order creation.
type NewReturnOrder struct {
	CustomerName    string          `json:"customer_name"`
	CustomerContact string          `json:"customer_contact"`
	OriginOrderRef  string          `json:"origin_order_ref"`
	ReturnType      string          `json:"return_type"`
	Method          string          `json:"method"`
	Items           []NewReturnItem `json:"items"`
}

// NewReturnItem is one line in a return-order creation request.
type NewReturnItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// CreateReturnOrder handles POST /api/v1/returns.
func (s *Server) CreateReturnOrder(ctx echo.Context) error {
	var body NewReturnOrder
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	returnType, err := parseReturnType(body.ReturnType)
	if err != nil {
		return badRequest(ctx, err)
	}
	method, err := parseCollectionMethod(body.Method)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]returns.ReturnItem, 0, len(body.Items))
	for _, entry := range body.Items {
		item, itemErr := returns.NewReturnItem(kernel.NewUUID(), entry.Name, entry.Category, entry.Quantity)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}
		items = append(items, item)
	}

	returnID := kernel.NewUUID()
	cmd, err := commands.NewCreateReturnOrderCommand(
		returnID,
		returns.Customer{Name: body.CustomerName, Contact: body.CustomerContact},
		body.OriginOrderRef,
		returnType,
		method,
		items,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateReturnOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": returnID.String()})
}

// ApproveReturnRequest is the request body for approving a return. The
// pickup window is required for courier collections and ignored for
// self-returns.
type ApproveReturnRequest struct {
	PickupDate DateOnly `json:"pickup_date"`
	TimeSlot   string   `json:"time_slot"`
}

// ApproveReturn handles POST /api/v1/returns/:id/approve.
func (s *Server) ApproveReturn(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body ApproveReturnRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewApproveReturnCommand(returnID, body.PickupDate.Time, body.TimeSlot)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ApproveReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupRequest is the request body for confirming the pickup driver.
type PickupRequest struct {
	DriverName    string `json:"driver_name"`
	DriverContact string `json:"driver_contact"`
}

// ConfirmPickup handles POST /api/v1/returns/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body PickupRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPickupCommand(returnID, body.DriverName, body.DriverContact)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ConfirmPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EvidenceRequest carries photo references for an evidence-recording step.
type EvidenceRequest struct {
	Photos []string `json:"photos"`
}

// RecordAtOrigin handles POST /api/v1/returns/:id/origin-evidence.
func (s *Server) RecordAtOrigin(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body EvidenceRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRecordAtOriginCommand(returnID, body.Photos)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RecordAtOrigin.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveAtWarehouse handles POST /api/v1/returns/:id/receive.
func (s *Server) ReceiveAtWarehouse(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body EvidenceRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewReceiveAtWarehouseCommand(returnID, body.Photos)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ReceiveAtWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InspectionRequest is the request body for completing the inspection.
// Every returned item must appear in Assessments.
type InspectionRequest struct {
	Assessments      []ItemAssessment `json:"assessments"`
	Notes            string           `json:"notes"`
	HasExternalGoods bool             `json:"has_external_goods"`
}

// ItemAssessment is one item's inspection outcome.
type ItemAssessment struct {
	ItemID           string `json:"item_id"`
	Condition        string `json:"condition"`
	ReturnedQuantity int    `json:"returned_quantity"`
	Notes            string `json:"notes"`
}

// CompleteInspection handles POST /api/v1/returns/:id/inspection.
func (s *Server) CompleteInspection(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body InspectionRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	assessments := make(map[kernel.UUID]returns.Assessment, len(body.Assessments))
	for _, entry := range body.Assessments {
		itemID, idErr := kernel.UUIDFromString(entry.ItemID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		condition, condErr := parseCondition(entry.Condition)
		if condErr != nil {
			return badRequest(ctx, condErr)
		}
		assessments[itemID] = returns.Assessment{
			Condition:        condition,
			ReturnedQuantity: entry.ReturnedQuantity,
			Notes:            entry.Notes,
		}
	}

	cmd, err := commands.NewCompleteInspectionCommand(returnID, assessments, body.Notes, body.HasExternalGoods)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CompleteInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisputeRequest is the request body for raising an inspection dispute.
type DisputeRequest struct {
	Reason string `json:"reason"`
}

// RaiseDispute handles POST /api/v1/returns/:id/dispute.
func (s *Server) RaiseDispute(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body DisputeRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRaiseDisputeCommand(returnID, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RaiseDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SortingRequest is the request body for finalizing the sorting step.
type SortingRequest struct {
	GenerateForm bool `json:"generate_form"`
}

// FinalizeSorting handles POST /api/v1/returns/:id/sorting.
func (s *Server) FinalizeSorting(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body SortingRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewFinalizeSortingCommand(returnID, body.GenerateForm)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.FinalizeSorting.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotifyRequest is the request body for the outcome notification.
type NotifyRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NotifyReturnCustomer handles POST /api/v1/returns/:id/notify.
func (s *Server) NotifyReturnCustomer(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body NotifyRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewNotifyReturnCustomerCommand(returnID, body.Subject, body.Body)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.NotifyReturnCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteReturn handles POST /api/v1/returns/:id/complete.
func (s *Server) CompleteReturn(ctx echo.Context) error {
	returnID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteReturnCommand(returnID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CompleteReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveReturns handles GET /api/v1/returns/active.
func (s *Server) GetActiveReturns(ctx echo.Context) error {
	query := queries.NewGetActiveReturnsQuery()

	orders, err := s.handlers.GetActiveReturns.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ActiveReturn, len(orders))
	for i, order := range orders {
		response[i] = ActiveReturn{
			ID:           order.ID.String(),
			CustomerName: order.CustomerName,
			Status:       order.Status,
			Method:       order.Method,
		}
		if order.ReceivedAt != nil {
			receivedAt := order.ReceivedAt.Format("2006-01-02T15:04:05Z07:00")
			response[i].ReceivedAt = &receivedAt
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ActiveReturn is one in-flight return order in the active-returns response.
type ActiveReturn struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	Status       string  `json:"status"`
	Method       string  `json:"method"`
	ReceivedAt   *string `json:"received_at,omitempty"`
}

func parseReturnType(value string) (returns.ReturnType, error) {
	switch value {
	case returns.FullReturn.String():
		return returns.FullReturn, nil
	case returns.PartialReturn.String():
		return returns.PartialReturn, nil
	default:
		return returns.TypeUnknown, errs.NewValueIsInvalidError("return type")
	}
}

func parseCollectionMethod(value string) (returns.CollectionMethod, error) {
	switch value {
	case returns.Courier.String():
		return returns.Courier, nil
	case returns.SelfReturn.String():
		return returns.SelfReturn, nil
	default:
		return returns.MethodUnknown, errs.NewValueIsInvalidError("collection method")
	}
}

func parseCondition(value string) (returns.Condition, error) {
	for _, condition := range []returns.Condition{
		returns.Good, returns.Damaged, returns.Repairable, returns.ToRetire, returns.ReadyToReuse,
	} {
		if condition.String() == value {
			return condition, nil
		}
	}
	return returns.ConditionUnset, errs.NewValueIsInvalidError("condition")
}
