package order

import (
	"errors"
	"fmt"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Delivery carries the caller-supplied delivery details of an order.
// Totals are trusted verbatim from the request and never recomputed from
// line items. Stage is a free-text descriptive label distinct from Status.
type Delivery struct {
	Stage       string
	Location    string
	Eta         string
	TotalAmount int64
	DeliveryFee int64
}

// Order is the aggregate root for a pharmacy delivery order.
//
// Invariants:
//   - all drug and service line items reference offerings of the single
//     fulfilling pharmacy, validated once at creation time
//   - riderID is nil until, and only until, the transition to Accepted
//   - status moves pending -> accepted -> delivered and never backward
//   - exactly one rider ever holds riderID
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	pharmacyID kernel.UUID
	riderID    *kernel.UUID
	paymentID  *kernel.UUID

	status   Status
	delivery Delivery

	drugIDs  []kernel.UUID
	services []ServiceLine

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order for a customer against a pharmacy.
// The caller is responsible for having validated offering availability and
// for resolving service line prices; timestamps are assigned by persistence.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pharmacyID kernel.UUID,
	delivery Delivery,
	drugIDs []kernel.UUID,
	services []ServiceLine,
	paymentID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setDelivery(delivery),
		o.setDrugIDs(drugIDs),
		o.setPaymentID(paymentID),
	); err != nil {
		return nil, err
	}

	o.services = services
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// lifecycle state, rider assignment and timestamps. It checks the
// status/rider consistency invariant on the way in.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pharmacyID kernel.UUID,
	riderID *kernel.UUID,
	status Status,
	delivery Delivery,
	drugIDs []kernel.UUID,
	services []ServiceLine,
	paymentID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, pharmacyID, delivery, drugIDs, services, paymentID)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.riderID = riderID
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's id. Immutable after creation.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PharmacyID returns the single pharmacy fulfilling this order.
func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// Rider returns the assigned rider's id, or nil while the order is pending.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// PaymentID returns the referenced payment record id, if any.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Delivery returns the caller-supplied delivery details.
func (o *Order) Delivery() Delivery {
	return o.delivery
}

// DrugIDs returns the catalog drug references fulfilled by this order.
func (o *Order) DrugIDs() []kernel.UUID {
	return o.drugIDs
}

// Services returns the order's priced service lines.
func (o *Order) Services() []ServiceLine {
	return o.services
}

// CreatedAt returns the persistence-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the persistence-assigned last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Accept claims the order for a rider.
//
// Guards, in order: the rider id must be valid, and the order must still be
// pending (ErrAlreadyAccepted otherwise). On success the order is Accepted
// and riderID is set for the first and only time.
//
// Acceptance must additionally be made atomic against concurrent claims by
// the repository's conditional update; this method encodes the transition,
// not the race protection.
func (o *Order) Accept(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// Deliver marks the order delivered by its assigned rider.
//
// Guards, in order: ownership before state — a rider who does not hold the
// order gets ErrNotOrderOwner even when the order is already delivered;
// only then is a repeated delivery reported as ErrAlreadyDelivered.
func (o *Order) Deliver(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.riderID == nil || !o.riderID.IsEqual(riderID) {
		return ErrNotOrderOwner
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}
	o.pharmacyID = pharmacyID
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if delivery.Stage == "" {
		return errs.NewValueIsRequiredError("stage")
	}
	if delivery.Location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if delivery.Eta == "" {
		return errs.NewValueIsRequiredError("eta")
	}
	if delivery.TotalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is negative", delivery.TotalAmount))
	}
	if delivery.DeliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", delivery.DeliveryFee))
	}

	o.delivery = delivery
	return nil
}

func (o *Order) setDrugIDs(drugIDs []kernel.UUID) error {
	for _, id := range drugIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.drugIDs = drugIDs
	return nil
}

func (o *Order) setPaymentID(paymentID *kernel.UUID) error {
	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return err
		}
	}
	o.paymentID = paymentID
	return nil
}
