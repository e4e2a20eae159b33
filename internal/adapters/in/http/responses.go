package http

import (
	"time"

	"pharmadelivery/internal/core/application/usecases/queries"
)

// MedOrderResponse is the JSON shape of an order returned by the API.
type MedOrderResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	PharmacyID string  `json:"pharmacyId"`
	RiderID    *string `json:"riderId"`
	PaymentID  *string `json:"paymentId,omitempty"`

	Status      string `json:"status"`
	Stage       string `json:"stage"`
	Location    string `json:"location"`
	Eta         string `json:"eta"`
	TotalAmount int64  `json:"totalAmount"`
	DeliveryFee int64  `json:"deliveryFee"`

	Pharmacy *PharmacyBody     `json:"pharmacy,omitempty"`
	Drugs    []DrugBody        `json:"drugs"`
	Services []ServiceLineBody `json:"services"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PharmacyBody identifies the fulfilling pharmacy in API responses.
type PharmacyBody struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	District string `json:"district"`
}

// DrugBody is a referenced catalog drug in API responses.
type DrugBody struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ServiceLineBody is a priced service line in API responses.
type ServiceLineBody struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// PharmacyDrugBody is one entry of a pharmacy's drug listing.
type PharmacyDrugBody struct {
	DrugID      string `json:"drugId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
}

// PaginationBody describes the returned slice of a paginated listing.
type PaginationBody struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// PharmacyDrugsBody is the body of GET /pharmacies/:pharmacyId/drugs.
type PharmacyDrugsBody struct {
	Drugs      []PharmacyDrugBody `json:"drugs"`
	Pagination PaginationBody     `json:"pagination"`
}

// PharmacyServiceBody is one entry of a pharmacy's service listing.
type PharmacyServiceBody struct {
	ServiceID   string `json:"serviceId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

func toMedOrderResponse(src queries.OrderResponse) MedOrderResponse {
	var riderID *string
	if src.RiderID != nil {
		raw := src.RiderID.String()
		riderID = &raw
	}

	var paymentID *string
	if src.PaymentID != nil {
		raw := src.PaymentID.String()
		paymentID = &raw
	}

	var pharmacy *PharmacyBody
	if src.Pharmacy != nil {
		pharmacy = &PharmacyBody{
			ID:       src.Pharmacy.ID.String(),
			Name:     src.Pharmacy.Name,
			Address:  src.Pharmacy.Address,
			District: src.Pharmacy.District,
		}
	}

	drugs := make([]DrugBody, len(src.Drugs))
	for i, drug := range src.Drugs {
		drugs[i] = DrugBody{
			ID:          drug.ID.String(),
			Name:        drug.Name,
			Description: drug.Description,
			Category:    drug.Category,
		}
	}

	services := make([]ServiceLineBody, len(src.Services))
	for i, line := range src.Services {
		services[i] = ServiceLineBody{
			ServiceID: line.ServiceID.String(),
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	return MedOrderResponse{
		ID:          src.ID.String(),
		CustomerID:  src.CustomerID.String(),
		PharmacyID:  src.PharmacyID.String(),
		RiderID:     riderID,
		PaymentID:   paymentID,
		Status:      src.Status,
		Stage:       src.Stage,
		Location:    src.Location,
		Eta:         src.Eta,
		TotalAmount: src.TotalAmount,
		DeliveryFee: src.DeliveryFee,
		Pharmacy:    pharmacy,
		Drugs:       drugs,
		Services:    services,
		CreatedAt:   src.CreatedAt,
		UpdatedAt:   src.UpdatedAt,
	}
}

func toMedOrderResponses(src []queries.OrderResponse) []MedOrderResponse {
	responses := make([]MedOrderResponse, len(src))
	for i, orderResp := range src {
		responses[i] = toMedOrderResponse(orderResp)
	}
	return responses
}
