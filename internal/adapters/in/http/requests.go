package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call echo.Context.Validate on bound requests.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator used by the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate runs struct-tag validation and reports failures as 400.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// CreateMedOrderRequest is the body of POST /med-orders. Drugs and services
// reference offerings of the single fulfilling pharmacy; totals are trusted
// as sent.
type CreateMedOrderRequest struct {
	Stage       string  `json:"stage"       validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	Eta         string  `json:"eta"         validate:"required"`
	TotalAmount int64   `json:"totalAmount" validate:"gte=0"`
	DeliveryFee int64   `json:"deliveryFee" validate:"gte=0"`
	PharmacyID  string  `json:"pharmacyId"  validate:"required,uuid"`
	PaymentID   *string `json:"paymentId"   validate:"omitempty,uuid"`

	Drugs    []OrderDrugRequest    `json:"drugs"    validate:"dive"`
	Services []OrderServiceRequest `json:"services" validate:"dive"`
}

// OrderDrugRequest is one requested catalog drug.
type OrderDrugRequest struct {
	DrugID string `json:"drugId" validate:"required,uuid"`
}

// OrderServiceRequest is one requested service line. Quantity zero means
// "unspecified" and defaults to one.
type OrderServiceRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"gte=0"`
}

// ErrorResponse is the JSON error body returned by every failing endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}
