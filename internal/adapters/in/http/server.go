// Package http exposes the fulfillment workflows over a JSON API. It
// coordinates between HTTP handlers and application use cases: handlers
// bind and parse requests, build commands or queries, and translate
// application errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	CreateFulfillmentSet  commands.CreateFulfillmentSetCommandHandler
	QuoteFulfillmentSet   commands.QuoteFulfillmentSetCommandHandler
	ConfirmFulfillmentSet commands.ConfirmFulfillmentSetCommandHandler
	GenerateDeliveryOrder commands.GenerateDeliveryOrderCommandHandler
	IssuePackingList      commands.IssuePackingListCommandHandler
	CheckStock            commands.CheckStockCommandHandler
	StartPacking          commands.StartPackingCommandHandler
	CompleteLoading       commands.CompleteLoadingCommandHandler
	SendOTP               commands.SendOTPCommandHandler
	VerifyOTPAndComplete  commands.VerifyOTPAndCompleteCommandHandler

	CreateReturnOrder    commands.CreateReturnOrderCommandHandler
	ApproveReturn        commands.ApproveReturnCommandHandler
	ConfirmPickup        commands.ConfirmPickupCommandHandler
	RecordAtOrigin       commands.RecordAtOriginCommandHandler
	ReceiveAtWarehouse   commands.ReceiveAtWarehouseCommandHandler
	CompleteInspection   commands.CompleteInspectionCommandHandler
	RaiseDispute         commands.RaiseDisputeCommandHandler
	FinalizeSorting      commands.FinalizeSortingCommandHandler
	NotifyReturnCustomer commands.NotifyReturnCustomerCommandHandler
	CompleteReturn       commands.CompleteReturnCommandHandler

	GetDeliveryOrder    queries.GetDeliveryOrderQueryHandler
	GetPendingShipments queries.GetPendingShipmentsQueryHandler
	GetActiveReturns    queries.GetActiveReturnsQueryHandler
}

// Server implements the JSON API for the fulfillment workflows.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/fulfillment-sets", s.CreateFulfillmentSet)
	api.POST("/fulfillment-sets/:id/quote", s.QuoteFulfillmentSet)
	api.POST("/fulfillment-sets/:id/confirm", s.ConfirmFulfillmentSet)
	api.POST("/fulfillment-sets/:id/delivery-order", s.GenerateDeliveryOrder)
	api.POST("/fulfillment-sets/:id/packing-list", s.IssuePackingList)
	api.POST("/fulfillment-sets/:id/stock-check", s.CheckStock)
	api.POST("/fulfillment-sets/:id/packing", s.StartPacking)
	api.POST("/fulfillment-sets/:id/loading", s.CompleteLoading)
	api.POST("/fulfillment-sets/:id/otp", s.SendOTP)
	api.POST("/fulfillment-sets/:id/handover", s.VerifyOTPAndComplete)
	api.GET("/shipments/pending", s.GetPendingShipments)
	api.GET("/delivery-orders/:number", s.GetDeliveryOrder)

	api.POST("/returns", s.CreateReturnOrder)
	api.POST("/returns/:id/approve", s.ApproveReturn)
	api.POST("/returns/:id/pickup", s.ConfirmPickup)
	api.POST("/returns/:id/origin-evidence", s.RecordAtOrigin)
	api.POST("/returns/:id/receive", s.ReceiveAtWarehouse)
	api.POST("/returns/:id/inspection", s.CompleteInspection)
	api.POST("/returns/:id/dispute", s.RaiseDispute)
	api.POST("/returns/:id/sorting", s.FinalizeSorting)
	api.POST("/returns/:id/notify", s.NotifyReturnCustomer)
	api.POST("/returns/:id/complete", s.CompleteReturn)
	api.GET("/returns/active", s.GetActiveReturns)
}

// Error is the JSON error body every failed request returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), Error{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

// statusFor maps application errors to HTTP status codes. Workflow-state
// violations are conflicts: the request was well-formed but the unit is not
// in a state that permits it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrSetBlockedBySequence),
		errors.Is(err, commands.ErrSetNotAwaitingHandover),
		errors.Is(err, returns.ErrOrderAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, otp.ErrInvalidOTP),
		errors.Is(err, otp.ErrChallengeConsumed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	return nil
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// DateOnly accepts dates in either RFC 3339 or YYYY-MM-DD form, since
// schedule dates carry no meaningful time component.
type DateOnly struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		d.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		d.Time = parsed
		return nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
