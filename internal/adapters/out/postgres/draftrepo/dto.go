// Package draftrepo provides data transfer objects and mapping functions for
// draft basket persistence. Every operation is scoped by the owning agency so
// one tenant's basket is invisible to the others.
package draftrepo

import (
	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DraftDTO represents the database structure for persisting draft line items.
type DraftDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	UnitPrice   int64
	Quantity    int
	LineTotal   int64
}

// TableName specifies the database table name for draft entities.
func (DraftDTO) TableName() string {
	return "drafts"
}

// fromDomain converts a draft line item to its database representation.
func fromDomain(readyOrder *draft.ReadyOrder) DraftDTO {
	return DraftDTO{
		ID:          readyOrder.ID().Bytes(),
		AgencyID:    readyOrder.AgencyID().Bytes(),
		ProductID:   readyOrder.ProductID().Bytes(),
		ProductName: readyOrder.ProductName(),
		UnitPrice:   readyOrder.UnitPrice(),
		Quantity:    readyOrder.Quantity(),
		LineTotal:   readyOrder.LineTotal(),
	}
}

// toDomain converts a database DTO to a draft line item using RestoreReadyOrder.
func toDomain(dto DraftDTO) (*draft.ReadyOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return draft.RestoreReadyOrder(
		id,
		agencyID,
		productID,
		dto.ProductName,
		dto.UnitPrice,
		dto.Quantity,
		dto.LineTotal,
	)
}
