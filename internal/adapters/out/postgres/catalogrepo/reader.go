// Package catalogrepo provides read access to the product catalog and the
// agency directory. The lifecycle core only ever reads these tables; prices
// and names are snapshotted into drafts and orders at write time.
package catalogrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice int64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// AgencyDTO represents the database structure for the agency directory.
type AgencyDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for agencies.
func (AgencyDTO) TableName() string {
	return "agencies"
}

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogReader) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:        productID,
		Name:      dto.Name,
		UnitPrice: dto.UnitPrice,
	}, nil
}

// GetAgency retrieves an agency by ID.
func (r *GormCatalogReader) GetAgency(ctx context.Context, id kernel.UUID) (ports.Agency, error) {
	if err := id.Validate(); err != nil {
		return ports.Agency{}, err
	}

	var dto AgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Agency{}, errs.NewObjectNotFoundError("agency", id.String())
		}
		return ports.Agency{}, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Agency{}, err
	}

	return ports.Agency{
		ID:   agencyID,
		Name: dto.Name,
	}, nil
}
