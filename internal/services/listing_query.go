package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/localnerve/propertyhub/internal/metrics"
	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// MaxPageSize caps the page size of a listing search
const MaxPageSize = 100

// ListingQuery is a parsed public search. Zero values mean "no restriction".
// It is built once by ParseListingQuery and never mutated afterwards.
type ListingQuery struct {
	city         string
	propertyType string
	bracket      string
	minPrice     float64
	hasMin       bool
	maxPrice     float64
	hasMax       bool
	page         int
	pageSize     int
}

// ListingQueryParams are the raw search inputs as they arrive on a request.
type ListingQueryParams struct {
	Location     string
	PropertyType string
	Bracket      string
	MinPrice     string
	MaxPrice     string
	Page         string
	PageSize     string
}

// ParseListingQuery normalises raw search inputs. A location equal to the
// statewide token (any case) or empty searches every city.
func ParseListingQuery(statewideToken string, p ListingQueryParams) (ListingQuery, error) {
	q := ListingQuery{
		propertyType: strings.ToLower(strings.TrimSpace(p.PropertyType)),
		bracket:      strings.TrimSpace(p.Bracket),
	}

	location := strings.ToLower(strings.TrimSpace(p.Location))
	if location != "" && location != strings.ToLower(statewideToken) {
		q.city = location
	}

	var err error
	if q.minPrice, q.hasMin, err = parsePrice("minPrice", p.MinPrice); err != nil {
		return ListingQuery{}, err
	}
	if q.maxPrice, q.hasMax, err = parsePrice("maxPrice", p.MaxPrice); err != nil {
		return ListingQuery{}, err
	}

	if q.page, err = parsePositive("page", p.Page); err != nil {
		return ListingQuery{}, err
	}
	if q.pageSize, err = parsePositive("pageSize", p.PageSize); err != nil {
		return ListingQuery{}, err
	}
	if q.pageSize > MaxPageSize {
		q.pageSize = MaxPageSize
	}
	if q.pageSize > 0 && q.page == 0 {
		q.page = 1
	}

	return q, nil
}

// City returns the lowercased city filter, empty when statewide
func (q ListingQuery) City() string { return q.city }

// Statewide reports whether the search spans every city
func (q ListingQuery) Statewide() bool { return q.city == "" }

// Apply composes the filter onto db. Only ACTIVE listings match; results are
// newest first with id breaking ties.
func (q ListingQuery) Apply(db *gorm.DB) *gorm.DB {
	tx := db.Clauses(hints.CommentBefore("select", "listing_search")).
		Where("status = ?", models.StatusActive)

	if q.city != "" {
		tx = tx.Where("LOWER(city) = ?", q.city)
	}
	if q.propertyType != "" {
		tx = tx.Where("LOWER(property_type) = ?", q.propertyType)
	}
	if q.bracket != "" {
		tx = tx.Where("price_category = ?", q.bracket)
	}
	if q.hasMin {
		tx = tx.Where("price >= ?", q.minPrice)
	}
	if q.hasMax {
		tx = tx.Where("price <= ?", q.maxPrice)
	}

	tx = tx.Order("created_at DESC").Order("id DESC")
	if q.pageSize > 0 {
		tx = tx.Limit(q.pageSize).Offset((q.page - 1) * q.pageSize)
	}
	return tx
}

// SearchListings runs a listing search
func SearchListings(ctx context.Context, db *gorm.DB, q ListingQuery) ([]models.Listing, error) {
	scope := "city"
	if q.Statewide() {
		scope = "statewide"
	}
	metrics.ListingSearches.WithLabelValues(scope).Inc()

	listings := []models.Listing{}
	if err := q.Apply(db.WithContext(ctx)).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

func parsePrice(field, raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, types.NewValidationError(field, fmt.Sprintf("%s must be a non-negative number", fieldLabel(field)))
	}
	return v, true, nil
}

func parsePositive(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, types.NewValidationError(field, fmt.Sprintf("%s must be a positive integer", fieldLabel(field)))
	}
	return v, nil
}
