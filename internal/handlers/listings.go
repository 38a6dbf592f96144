// listings.go
//
// Listing search and management handlers
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propertyhub.
// propertyhub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propertyhub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propertyhub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// ListingHandler handles listing routes
type ListingHandler struct {
	DB             *gorm.DB
	StatewideToken string
}

// SearchListings handles GET /api/listings
// @Summary Search listings
// @Description Search ACTIVE listings, newest first. Absent filters do not restrict.
// @Tags Listings
// @Produce json
// @Param city query string false "City, or the statewide token for every city"
// @Param type query string false "Property type"
// @Param bracket query string false "Price bracket" Enums(under-50-lakh, 50-lakh-to-1-crore, 1-crore-to-2-crore, above-2-crore)
// @Param minPrice query number false "Minimum price, inclusive"
// @Param maxPrice query number false "Maximum price, inclusive"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size"
// @Success 200 {array} models.Listing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /listings [get]
func (h *ListingHandler) SearchListings(c *fiber.Ctx) error {
	q, err := services.ParseListingQuery(h.StatewideToken, services.ListingQueryParams{
		Location:     c.Query("city"),
		PropertyType: c.Query("type"),
		Bracket:      c.Query("bracket"),
		MinPrice:     c.Query("minPrice"),
		MaxPrice:     c.Query("maxPrice"),
		Page:         c.Query("page"),
		PageSize:     c.Query("pageSize"),
	})
	if err != nil {
		return respondError(c, err, "searchListings")
	}

	listings, err := services.SearchListings(c.UserContext(), h.DB, q)
	if err != nil {
		return respondError(c, err, "searchListings")
	}
	return c.JSON(listings)
}

// ListAllListings handles GET /api/admin/listings
// @Summary List every listing
// @Description List listings of any status, newest first
// @Tags Listings
// @Produce json
// @Success 200 {array} models.Listing
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /admin/listings [get]
func (h *ListingHandler) ListAllListings(c *fiber.Ctx) error {
	listings, err := services.ListAllListings(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "listAllListings")
	}
	return c.JSON(listings)
}

// GetListing handles GET /api/listings/:id
// @Summary Get a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.Listing
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	listing, err := services.GetListing(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "getListing")
	}
	return c.JSON(listing)
}

// CreateListing handles POST /api/listings
// @Summary Create a listing
// @Description Create a listing. The slug is derived from the title and the price bracket from the price.
// @Tags Listings
// @Accept json
// @Produce json
// @Param body body services.ListingInput true "Listing"
// @Success 201 {object} models.Listing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	var in services.ListingInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "createListing")
	}

	listing, err := services.CreateListing(c.UserContext(), h.DB, in)
	if err != nil {
		return respondError(c, err, "createListing")
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// UpdateListing handles PATCH /api/listings/:id
// @Summary Update a listing
// @Description Update the supplied fields. A new title regenerates the slug; a new price re-derives the bracket.
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param body body services.ListingInput true "Fields to change"
// @Success 200 {object} models.Listing
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /listings/{id} [patch]
func (h *ListingHandler) UpdateListing(c *fiber.Ctx) error {
	var in services.ListingInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, "updateListing")
	}

	listing, err := services.UpdateListing(c.UserContext(), h.DB, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "updateListing")
	}
	return c.JSON(listing)
}

// DeleteListing handles DELETE /api/listings/:id
// @Summary Delete a listing
// @Description Delete a listing and return it
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.Listing
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *ListingHandler) DeleteListing(c *fiber.Ctx) error {
	listing, err := services.DeleteListing(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err, "deleteListing")
	}
	return c.JSON(listing)
}
