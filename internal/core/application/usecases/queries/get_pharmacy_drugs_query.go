package queries

import (
	"errors"
	"fmt"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var ErrGetPharmacyDrugsQueryIsNotConstructed = errors.New(
	"GetPharmacyDrugsQuery must be created via NewGetPharmacyDrugsQuery constructor",
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// GetPharmacyDrugsQuery retrieves a page of one pharmacy's available drug
// offerings, optionally filtered by a name/description search term.
type GetPharmacyDrugsQuery struct {
	pharmacyID  kernel.UUID
	page        int
	limit       int
	searchQuery string

	guard guard.ConstructorGuard
}

// NewGetPharmacyDrugsQuery creates a paginated pharmacy-drug listing query.
// Page and limit fall back to 1 and 20 when left zero.
func NewGetPharmacyDrugsQuery(
	pharmacyID kernel.UUID, page, limit int, searchQuery string,
) (GetPharmacyDrugsQuery, error) {
	if err := pharmacyID.Validate(); err != nil {
		return GetPharmacyDrugsQuery{}, err
	}

	if page == 0 {
		page = defaultPage
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if page < 0 {
		return GetPharmacyDrugsQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}
	if limit < 0 {
		return GetPharmacyDrugsQuery{}, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is negative", limit))
	}

	return GetPharmacyDrugsQuery{
		pharmacyID:  pharmacyID,
		page:        page,
		limit:       limit,
		searchQuery: searchQuery,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPharmacyDrugsQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyDrugsQueryIsNotConstructed)
}

// PharmacyID returns the pharmacy whose offerings are requested.
func (q GetPharmacyDrugsQuery) PharmacyID() kernel.UUID {
	return q.pharmacyID
}

// Page returns the 1-based page number.
func (q GetPharmacyDrugsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetPharmacyDrugsQuery) Limit() int {
	return q.limit
}

// SearchQuery returns the optional case-insensitive search term.
func (q GetPharmacyDrugsQuery) SearchQuery() string {
	return q.searchQuery
}

// PharmacyDrugResponse is one drug offering of a pharmacy: the catalog drug
// plus the pharmacy-specific price.
type PharmacyDrugResponse struct {
	DrugID      kernel.UUID
	Name        string
	Description string
	Category    string
	Price       int64
}

// Pagination describes the slice of a paginated listing that was returned.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// PharmacyDrugsResponse is a page of a pharmacy's drug offerings.
type PharmacyDrugsResponse struct {
	Drugs      []PharmacyDrugResponse
	Pagination Pagination
}
