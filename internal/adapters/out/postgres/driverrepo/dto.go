// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. The delivering flag column doubles as the exclusivity
// lock that keeps one driver off two concurrent deliveries.
package driverrepo

import (
	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Phone      string
	Vehicle    string
	Delivering bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		Vehicle:    aggregate.Vehicle(),
		Delivering: aggregate.IsDelivering(),
	}
}

// toDomain converts a database DTO to a driver using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.Vehicle, dto.Delivering)
}
