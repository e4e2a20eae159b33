// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and their database
// representation across the order header, drug reference and service line
// tables.
package orderrepo

import (
	"time"

	"pharmadelivery/internal/adapters/out/postgres/catalogrepo"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Drug references live in the med_order_drugs join table; service lines are
// owned rows in med_order_services.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	PharmacyID uuid.UUID  `gorm:"type:uuid;index"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`
	PaymentID  *uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"index"`

	Stage       string
	Location    string
	Eta         string
	TotalAmount int64
	DeliveryFee int64

	Drugs    []catalogrepo.DrugDTO `gorm:"many2many:med_order_drugs;joinForeignKey:OrderID;joinReferences:DrugID"`
	Services []OrderServiceDTO     `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "med_orders"
}

// OrderServiceDTO represents one priced service line of an order.
type OrderServiceDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ServiceID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Price     int64
}

// TableName specifies the database table name for order service lines.
func (OrderServiceDTO) TableName() string {
	return "med_order_services"
}

// fromDomain converts an order domain aggregate to its database
// representation, including drug references and service lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	drugs := make([]catalogrepo.DrugDTO, 0, len(aggregate.DrugIDs()))
	for _, drugID := range aggregate.DrugIDs() {
		drugs = append(drugs, catalogrepo.DrugDTO{ID: drugID.Bytes()})
	}

	services := make([]OrderServiceDTO, 0, len(aggregate.Services()))
	for _, line := range aggregate.Services() {
		services = append(services, OrderServiceDTO{
			OrderID:   aggregate.ID().Bytes(),
			ServiceID: line.ServiceID().Bytes(),
			Quantity:  line.Quantity(),
			Price:     line.Price(),
		})
	}

	delivery := aggregate.Delivery()
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		PharmacyID:  aggregate.PharmacyID().Bytes(),
		RiderID:     riderID,
		PaymentID:   paymentID,
		Status:      aggregate.Status().String(),
		Stage:       delivery.Stage,
		Location:    delivery.Location,
		Eta:         delivery.Eta,
		TotalAmount: delivery.TotalAmount,
		DeliveryFee: delivery.DeliveryFee,
		Drugs:       drugs,
		Services:    services,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the status/rider consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if paymentErr != nil {
			return nil, paymentErr
		}
		paymentID = &pID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	drugIDs := make([]kernel.UUID, 0, len(dto.Drugs))
	for _, drug := range dto.Drugs {
		drugID, drugErr := kernel.UUIDFromBytes(drug.ID[:])
		if drugErr != nil {
			return nil, drugErr
		}
		drugIDs = append(drugIDs, drugID)
	}

	services := make([]order.ServiceLine, 0, len(dto.Services))
	for _, lineDTO := range dto.Services {
		serviceID, serviceErr := kernel.UUIDFromBytes(lineDTO.ServiceID[:])
		if serviceErr != nil {
			return nil, serviceErr
		}

		line, lineErr := order.NewServiceLine(serviceID, lineDTO.Quantity, lineDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		services = append(services, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		pharmacyID,
		riderID,
		status,
		order.Delivery{
			Stage:       dto.Stage,
			Location:    dto.Location,
			Eta:         dto.Eta,
			TotalAmount: dto.TotalAmount,
			DeliveryFee: dto.DeliveryFee,
		},
		drugIDs,
		services,
		paymentID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
