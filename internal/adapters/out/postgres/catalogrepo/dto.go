// Package catalogrepo provides read-side access to the pharmacy catalog:
// pharmacies, drugs, services and the per-pharmacy offering links that carry
// availability and price.
package catalogrepo

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyDTO represents the database structure of a pharmacy.
type PharmacyDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Address  string
	District string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for pharmacies.
func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

// DrugDTO represents a catalog drug shared across pharmacies.
type DrugDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	Category    string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for drugs.
func (DrugDTO) TableName() string {
	return "drugs"
}

// ServiceDTO represents a catalog service shared across pharmacies.
type ServiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for services.
func (ServiceDTO) TableName() string {
	return "services"
}

// PharmacyDrugDTO links a pharmacy to a drug it offers, with the
// pharmacy-specific price and availability flag.
type PharmacyDrugDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PharmacyID  uuid.UUID `gorm:"type:uuid;index:idx_pharmacy_drug,unique"`
	DrugID      uuid.UUID `gorm:"type:uuid;index:idx_pharmacy_drug,unique"`
	Price       int64
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for pharmacy-drug links.
func (PharmacyDrugDTO) TableName() string {
	return "pharmacy_drugs"
}

// PharmacyServiceDTO links a pharmacy to a service it offers, with the
// pharmacy-specific price and availability flag.
type PharmacyServiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PharmacyID  uuid.UUID `gorm:"type:uuid;index:idx_pharmacy_service,unique"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index:idx_pharmacy_service,unique"`
	Price       int64
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for pharmacy-service links.
func (PharmacyServiceDTO) TableName() string {
	return "pharmacy_services"
}
