// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery assignment snapshot lives in nullable columns on the order row
// itself; the driver columns are set together at dispatch and never cleared,
// so a Delivered order keeps its history.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID       uuid.UUID `gorm:"type:uuid;index"`
	AgencyName     string
	OrderedAt      time.Time
	ReserveDate    time.Time
	Status         int `gorm:"index"`
	ProductSummary string
	TotalQuantity  int
	TotalAmount    int64

	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	DriverName  *string
	DriverPhone *string
	Vehicle     *string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one frozen line item of an order.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName string
	UnitPrice   int64
	Quantity    int
	LineTotal   int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.AgencyOrder) OrderDTO {
	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		AgencyID:       aggregate.AgencyID().Bytes(),
		AgencyName:     aggregate.AgencyName(),
		OrderedAt:      aggregate.OrderedAt(),
		ReserveDate:    aggregate.ReserveDate(),
		Status:         int(aggregate.Status()),
		ProductSummary: aggregate.ProductSummary(),
		TotalQuantity:  aggregate.TotalQuantity(),
		TotalAmount:    aggregate.TotalAmount(),
	}

	if assignment := aggregate.Assignment(); assignment != nil {
		driverID := assignment.DriverID().Bytes()
		driverName := assignment.DriverName()
		driverPhone := assignment.DriverPhone()
		vehicle := assignment.Vehicle()

		dto.DriverID = &driverID
		dto.DriverName = &driverName
		dto.DriverPhone = &driverPhone
		dto.Vehicle = &vehicle
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:     dto.ID,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including items and the optional
// delivery assignment using RestoreAgencyOrder.
func toDomain(dto OrderDTO) (*order.AgencyOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignment *order.DeliveryAssignment
	if dto.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		restored, driverErr := order.NewDeliveryAssignment(
			driverID,
			derefString(dto.DriverName),
			derefString(dto.DriverPhone),
			derefString(dto.Vehicle),
		)
		if driverErr != nil {
			return nil, driverErr
		}
		assignment = &restored
	}

	return order.RestoreAgencyOrder(
		id,
		agencyID,
		dto.AgencyName,
		dto.OrderedAt,
		dto.ReserveDate,
		order.Status(dto.Status),
		items,
		assignment,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
