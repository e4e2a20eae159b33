package services

import (
	"context"
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
)

// ErrOfferingUnavailable is the sentinel wrapped by UnavailableOfferingError,
// for errors.Is classification at the transport boundary.
var ErrOfferingUnavailable = errors.New("requested offering is not available at this pharmacy")

// UnavailableOfferingError reports that a create-order request referenced
// drugs and/or services the pharmacy does not currently offer. It names the
// failing class (drugs, services, or both) but not the individual ids.
type UnavailableOfferingError struct {
	Drugs    bool
	Services bool
}

func (e *UnavailableOfferingError) Error() string {
	switch {
	case e.Drugs && e.Services:
		return "some requested drugs and services are not available at this pharmacy"
	case e.Drugs:
		return "some requested drugs are not available at this pharmacy"
	case e.Services:
		return "some requested services are not available at this pharmacy"
	default:
		return ErrOfferingUnavailable.Error()
	}
}

func (e *UnavailableOfferingError) Unwrap() error {
	return ErrOfferingUnavailable
}

// OfferingCounter counts a pharmacy's catalog links that are currently
// marked available and match the given offering ids. Implemented by the
// catalog repository.
type OfferingCounter interface {
	CountAvailableDrugLinks(ctx context.Context, pharmacyID kernel.UUID, drugIDs []kernel.UUID) (int64, error)
	CountAvailableServiceLinks(ctx context.Context, pharmacyID kernel.UUID, serviceIDs []kernel.UUID) (int64, error)
}

// AvailabilityValidator confirms that every requested drug and service is
// attached to the pharmacy and marked available at validation time. The
// check is read-only and performed once, at order creation; it is not
// re-evaluated later in the order lifecycle.
type AvailabilityValidator struct{}

// NewAvailabilityValidator creates an AvailabilityValidator.
func NewAvailabilityValidator() AvailabilityValidator {
	return AvailabilityValidator{}
}

// Validate succeeds when the count of available pharmacy-drug links matching
// the distinct requested drug ids equals the distinct request count, and the
// same holds independently for services. A request with zero drugs and zero
// services is vacuously valid. Failure returns an UnavailableOfferingError
// naming the failing class(es).
func (v AvailabilityValidator) Validate(
	ctx context.Context,
	catalog OfferingCounter,
	pharmacyID kernel.UUID,
	drugIDs []kernel.UUID,
	serviceIDs []kernel.UUID,
) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	offeringErr := &UnavailableOfferingError{}

	if distinct := dedupe(drugIDs); len(distinct) > 0 {
		count, err := catalog.CountAvailableDrugLinks(ctx, pharmacyID, distinct)
		if err != nil {
			return err
		}
		if count != int64(len(distinct)) {
			offeringErr.Drugs = true
		}
	}

	if distinct := dedupe(serviceIDs); len(distinct) > 0 {
		count, err := catalog.CountAvailableServiceLinks(ctx, pharmacyID, distinct)
		if err != nil {
			return err
		}
		if count != int64(len(distinct)) {
			offeringErr.Services = true
		}
	}

	if offeringErr.Drugs || offeringErr.Services {
		return offeringErr
	}

	return nil
}

func dedupe(ids []kernel.UUID) []kernel.UUID {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
