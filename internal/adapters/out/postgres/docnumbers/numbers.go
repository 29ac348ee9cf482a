// Package docnumbers issues the sequential business document identifiers
// (packing lists, delivery orders, goods receipt notes, condition forms)
// from database-backed counters. Each document type has its own counter row;
// a single atomic upsert increments and reads it, so concurrent issuers
// never receive the same number.
package docnumbers

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	packingListSeq   = "packing_list"
	deliveryOrderSeq = "delivery_order"
	goodsReceiptSeq  = "goods_receipt"
	conditionFormSeq = "condition_form"
)

// DocSequenceDTO represents one named counter row.
type DocSequenceDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counter rows.
func (DocSequenceDTO) TableName() string {
	return "doc_sequences"
}

// GormDocumentNumbers implements DocumentNumbers over a doc_sequences table.
type GormDocumentNumbers struct {
	db *gorm.DB
}

// NewGormDocumentNumbers creates a database-backed document number issuer.
func NewGormDocumentNumbers(db *gorm.DB) *GormDocumentNumbers {
	return &GormDocumentNumbers{db: db}
}

// NextPackingList returns the next packing-list number.
func (g *GormDocumentNumbers) NextPackingList(ctx context.Context) (string, error) {
	return g.next(ctx, packingListSeq, "PL")
}

// NextDeliveryOrder returns the next delivery-order number.
func (g *GormDocumentNumbers) NextDeliveryOrder(ctx context.Context) (string, error) {
	return g.next(ctx, deliveryOrderSeq, "DO")
}

// NextGoodsReceipt returns the next goods-received-note number.
func (g *GormDocumentNumbers) NextGoodsReceipt(ctx context.Context) (string, error) {
	return g.next(ctx, goodsReceiptSeq, "GRN")
}

// NextConditionForm returns the next returned-condition-form number.
func (g *GormDocumentNumbers) NextConditionForm(ctx context.Context) (string, error) {
	return g.next(ctx, conditionFormSeq, "RCF")
}

func (g *GormDocumentNumbers) next(ctx context.Context, name, prefix string) (string, error) {
	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO doc_sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = doc_sequences.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("next %s number: %w", name, err)
	}

	return fmt.Sprintf("%s-%04d", prefix, value), nil
}
