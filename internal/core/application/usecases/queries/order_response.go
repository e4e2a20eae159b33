package queries

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse is the read-side projection of an order, hydrated with its
// drug references, priced service lines and the fulfilling pharmacy.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	PharmacyID kernel.UUID
	RiderID    *kernel.UUID
	PaymentID  *kernel.UUID

	Status      string
	Stage       string
	Location    string
	Eta         string
	TotalAmount int64
	DeliveryFee int64

	Pharmacy *PharmacyResponse
	Drugs    []DrugResponse
	Services []ServiceLineResponse

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PharmacyResponse identifies the pharmacy fulfilling an order.
type PharmacyResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	District string
}

// DrugResponse is a catalog drug referenced by an order.
type DrugResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
}

// ServiceLineResponse is a priced service line of an order.
type ServiceLineResponse struct {
	ServiceID kernel.UUID
	Name      string
	Quantity  int
	Price     int64
}

const orderColumns = `
	id,
	customer_id,
	pharmacy_id,
	rider_id,
	payment_id,
	status,
	stage,
	location,
	eta,
	total_amount,
	delivery_fee,
	created_at,
	updated_at
`

// fetchOrders runs the given med_orders query and hydrates each row with its
// pharmacy, drug references and service lines. The line-item loads are
// batched over the full result set rather than issued per order.
func fetchOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrder(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = hydrateOrders(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrder(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		orderResp            OrderResponse
		id, customerID       uuid.UUID
		pharmacyID           uuid.UUID
		riderID, paymentID   *uuid.UUID
		createdAt, updatedAt time.Time
	)

	err := scan(
		&id,
		&customerID,
		&pharmacyID,
		&riderID,
		&paymentID,
		&orderResp.Status,
		&orderResp.Stage,
		&orderResp.Location,
		&orderResp.Eta,
		&orderResp.TotalAmount,
		&orderResp.DeliveryFee,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if orderResp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if orderResp.PharmacyID, err = kernel.UUIDFromBytes(pharmacyID[:]); err != nil {
		return OrderResponse{}, err
	}
	if riderID != nil {
		rid, ridErr := kernel.UUIDFromBytes(riderID[:])
		if ridErr != nil {
			return OrderResponse{}, ridErr
		}
		orderResp.RiderID = &rid
	}
	if paymentID != nil {
		pid, pidErr := kernel.UUIDFromBytes(paymentID[:])
		if pidErr != nil {
			return OrderResponse{}, pidErr
		}
		orderResp.PaymentID = &pid
	}

	orderResp.CreatedAt = createdAt
	orderResp.UpdatedAt = updatedAt
	orderResp.Drugs = make([]DrugResponse, 0)
	orderResp.Services = make([]ServiceLineResponse, 0)
	return orderResp, nil
}

func hydrateOrders(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[string]*OrderResponse, len(orders))
	orderIDs := make([]string, 0, len(orders))
	pharmacyIDs := make([]string, 0, len(orders))
	for i := range orders {
		index[orders[i].ID.String()] = &orders[i]
		orderIDs = append(orderIDs, orders[i].ID.String())
		pharmacyIDs = append(pharmacyIDs, orders[i].PharmacyID.String())
	}

	if err := loadPharmacies(ctx, db, index, pharmacyIDs); err != nil {
		return err
	}
	if err := loadDrugs(ctx, db, index, orderIDs); err != nil {
		return err
	}
	return loadServiceLines(ctx, db, index, orderIDs)
}

func loadPharmacies(
	ctx context.Context, db *gorm.DB, index map[string]*OrderResponse, pharmacyIDs []string,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			district
		FROM pharmacies
		WHERE id::text IN ?
	`, pharmacyIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	pharmacies := make(map[string]PharmacyResponse)
	for rows.Next() {
		var id uuid.UUID
		var pharmacy PharmacyResponse

		if err = rows.Scan(&id, &pharmacy.Name, &pharmacy.Address, &pharmacy.District); err != nil {
			return err
		}
		if pharmacy.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		pharmacies[pharmacy.ID.String()] = pharmacy
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for _, orderResp := range index {
		if pharmacy, ok := pharmacies[orderResp.PharmacyID.String()]; ok {
			p := pharmacy
			orderResp.Pharmacy = &p
		}
	}
	return nil
}

func loadDrugs(
	ctx context.Context, db *gorm.DB, index map[string]*OrderResponse, orderIDs []string,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			od.order_id,
			d.id,
			d.name,
			d.description,
			d.category
		FROM med_order_drugs od
		JOIN drugs d ON d.id = od.drug_id
		WHERE od.order_id::text IN ?
		ORDER BY d.name
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, drugID uuid.UUID
		var drug DrugResponse

		if err = rows.Scan(&orderID, &drugID, &drug.Name, &drug.Description, &drug.Category); err != nil {
			return err
		}
		if drug.ID, err = kernel.UUIDFromBytes(drugID[:]); err != nil {
			return err
		}
		if orderResp, ok := index[orderID.String()]; ok {
			orderResp.Drugs = append(orderResp.Drugs, drug)
		}
	}
	return rows.Err()
}

func loadServiceLines(
	ctx context.Context, db *gorm.DB, index map[string]*OrderResponse, orderIDs []string,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			os.order_id,
			os.service_id,
			s.name,
			os.quantity,
			os.price
		FROM med_order_services os
		JOIN services s ON s.id = os.service_id
		WHERE os.order_id::text IN ?
		ORDER BY s.name
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, serviceID uuid.UUID
		var line ServiceLineResponse

		if err = rows.Scan(&orderID, &serviceID, &line.Name, &line.Quantity, &line.Price); err != nil {
			return err
		}
		if line.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
			return err
		}
		if orderResp, ok := index[orderID.String()]; ok {
			orderResp.Services = append(orderResp.Services, line)
		}
	}
	return rows.Err()
}
