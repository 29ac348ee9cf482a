package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveReturnsQueryHandler reads in-flight return orders straight from
// the database.
type GetActiveReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveReturnsQueryHandler creates a handler for active-return
// queries.
func NewGetActiveReturnsQueryHandler(db *gorm.DB) GetActiveReturnsQueryHandler {
	return GetActiveReturnsQueryHandler{db: db}
}

// Handle executes the query, returning returns in the order the requests
// were received.
func (h GetActiveReturnsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveReturnsQuery,
) ([]GetActiveReturnsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveReturnsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			method,
			received_at
		FROM return_orders
		WHERE status != ?
		ORDER BY id
	`, returns.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveReturnsQueryResponse
		var id uuid.UUID
		var status, method int
		var receivedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&status,
			&method,
			&receivedAt,
		)
		if err != nil {
			return nil, err
		}

		returnID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = returnID

		resp.Status = returns.Status(status).String()
		resp.Method = returns.CollectionMethod(method).String()
		if receivedAt.Valid {
			receivedAtUTC := receivedAt.Time.UTC()
			resp.ReceivedAt = &receivedAtUTC
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
