// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsAvailable  bool `gorm:"index"`
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		IsAvailable:  aggregate.IsAvailable(),
		IsActive:     aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		dto.PasswordHash,
		dto.IsAvailable,
		dto.IsActive,
	)
}
