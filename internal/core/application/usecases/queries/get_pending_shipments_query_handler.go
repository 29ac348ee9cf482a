package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingShipmentsQueryHandler reads uncompleted sets straight from the
// database, skipping aggregate reconstruction.
type GetPendingShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingShipmentsQueryHandler creates a handler for pending-shipment
// queries. Requires a GORM database connection for query execution.
func NewGetPendingShipmentsQueryHandler(db *gorm.DB) GetPendingShipmentsQueryHandler {
	return GetPendingShipmentsQueryHandler{db: db}
}

// Handle executes the query. Sets are returned request by request in ordinal
// order, the same order the sequential gate processes them.
func (h GetPendingShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsQuery,
) ([]GetPendingShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetPendingShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			ordinal,
			label,
			status,
			delivery_order_no
		FROM fulfillment_sets
		WHERE status != ?
		ORDER BY request_id, ordinal
	`, shipment.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingShipmentsQueryResponse
		var id, requestID uuid.UUID
		var status int
		var doNumber sql.NullString

		err = rows.Scan(
			&id,
			&requestID,
			&resp.Ordinal,
			&resp.Label,
			&status,
			&doNumber,
		)
		if err != nil {
			return nil, err
		}

		setID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = setID

		reqID, idErr := kernel.UUIDFromBytes(requestID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RequestID = reqID

		resp.Status = shipment.Status(status).String()
		if doNumber.Valid {
			resp.DeliveryOrderNo = doNumber.String
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
