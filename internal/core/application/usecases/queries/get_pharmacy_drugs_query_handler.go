package queries

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPharmacyDrugsQueryHandler retrieves a page of one pharmacy's available
// drug offerings, ordered by drug name.
type GetPharmacyDrugsQueryHandler struct {
	db *gorm.DB
}

// NewGetPharmacyDrugsQueryHandler creates a handler for pharmacy-drug listings.
func NewGetPharmacyDrugsQueryHandler(db *gorm.DB) GetPharmacyDrugsQueryHandler {
	return GetPharmacyDrugsQueryHandler{db: db}
}

// Handle executes the query. Only offerings marked available are returned;
// the search term matches drug name or description case-insensitively.
func (h GetPharmacyDrugsQueryHandler) Handle(
	ctx context.Context,
	query GetPharmacyDrugsQuery,
) (PharmacyDrugsResponse, error) {
	if err := query.Validate(); err != nil {
		return PharmacyDrugsResponse{}, err
	}

	pattern := "%" + query.SearchQuery() + "%"

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM pharmacy_drugs pd
		JOIN drugs d ON d.id = pd.drug_id
		WHERE pd.pharmacy_id = ?
		  AND pd.is_available
		  AND (? = '' OR d.name ILIKE ? OR d.description ILIKE ?)
	`, query.PharmacyID().Bytes(), query.SearchQuery(), pattern, pattern).
		Scan(&total).Error
	if err != nil {
		return PharmacyDrugsResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.description,
			d.category,
			pd.price
		FROM pharmacy_drugs pd
		JOIN drugs d ON d.id = pd.drug_id
		WHERE pd.pharmacy_id = ?
		  AND pd.is_available
		  AND (? = '' OR d.name ILIKE ? OR d.description ILIKE ?)
		ORDER BY d.name
		LIMIT ? OFFSET ?
	`, query.PharmacyID().Bytes(), query.SearchQuery(), pattern, pattern,
		query.Limit(), offset).Rows()
	if err != nil {
		return PharmacyDrugsResponse{}, err
	}
	defer rows.Close()

	drugs := make([]PharmacyDrugResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var drug PharmacyDrugResponse

		err = rows.Scan(&id, &drug.Name, &drug.Description, &drug.Category, &drug.Price)
		if err != nil {
			return PharmacyDrugsResponse{}, err
		}
		if drug.DrugID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return PharmacyDrugsResponse{}, err
		}
		drugs = append(drugs, drug)
	}
	if err = rows.Err(); err != nil {
		return PharmacyDrugsResponse{}, err
	}

	totalPages := total / int64(query.Limit())
	if total%int64(query.Limit()) != 0 {
		totalPages++
	}

	return PharmacyDrugsResponse{
		Drugs: drugs,
		Pagination: Pagination{
			Page:       query.Page(),
			Limit:      query.Limit(),
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
