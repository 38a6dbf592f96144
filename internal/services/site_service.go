package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/localnerve/propertyhub/internal/models"
	"gorm.io/gorm"
)

// FeaturedLimit is the number of featured listings on the home page
const FeaturedLimit = 6

// HomePage is the data behind the public home page
type HomePage struct {
	Settings     models.Settings  `json:"settings"`
	Featured     []models.Listing `json:"featured"`
	Areas        []models.Area    `json:"areas"`
	PopularAreas []string         `json:"popularAreas"`
}

// LocationsPage lists every area and category for the locations page
type LocationsPage struct {
	SiteName   string            `json:"siteName"`
	Areas      []models.Area     `json:"areas"`
	Categories []models.Category `json:"categories"`
}

// DashboardStats are the counts on the staff dashboard
type DashboardStats struct {
	TotalListings    int64 `json:"totalListings"`
	SoldListings     int64 `json:"soldListings"`
	TotalInquiries   int64 `json:"totalInquiries"`
	PendingInquiries int64 `json:"pendingInquiries"`
}

// LoadHomePage gathers the home page data
func LoadHomePage(ctx context.Context, db *gorm.DB, settings models.Settings) (*HomePage, error) {
	featured, err := FeaturedListings(ctx, db, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	areas, err := HomeAreas(ctx, db)
	if err != nil {
		return nil, err
	}
	popular, err := PopularAreaNames(ctx, db)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Settings:     settings,
		Featured:     featured,
		Areas:        areas,
		PopularAreas: popular,
	}, nil
}

// LoadLocationsPage gathers every area and category
func LoadLocationsPage(ctx context.Context, db *gorm.DB, settings models.Settings) (*LocationsPage, error) {
	areas, err := ListAreas(ctx, db)
	if err != nil {
		return nil, err
	}
	categories, err := ListCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	return &LocationsPage{SiteName: settings.SiteName, Areas: areas, Categories: categories}, nil
}

// LoadDashboardStats counts listings and inquiries
func LoadDashboardStats(ctx context.Context, db *gorm.DB) (*DashboardStats, error) {
	var stats DashboardStats
	db = db.WithContext(ctx)

	counts := []struct {
		dst   *int64
		model interface{}
		where []interface{}
	}{
		{&stats.TotalListings, &models.Listing{}, nil},
		{&stats.SoldListings, &models.Listing{}, []interface{}{"status = ?", models.StatusSold}},
		{&stats.TotalInquiries, &models.Inquiry{}, nil},
		{&stats.PendingInquiries, &models.Inquiry{}, []interface{}{"status = ?", models.InquiryPending}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return &stats, nil
}

// SitemapURL is one <url> entry
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap is a sitemaps.org urlset
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the home and locations pages, every ACTIVE listing, and
// every area and area/category search page under baseURL.
func BuildSitemap(ctx context.Context, db *gorm.DB, baseURL string) (*Sitemap, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	now := time.Now().UTC().Format(time.RFC3339)

	sm := &Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: baseURL, LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
			{Loc: baseURL + "/locations", LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
		},
	}

	var listings []models.Listing
	if err := db.WithContext(ctx).Select("slug", "updated_at").
		Where("status = ?", models.StatusActive).
		Order("updated_at DESC").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("sitemap listings: %w", err)
	}
	for _, l := range listings {
		sm.URLs = append(sm.URLs, SitemapURL{
			Loc:        baseURL + "/property/" + url.PathEscape(l.Slug),
			LastMod:    l.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	areas, err := ListAreas(ctx, db)
	if err != nil {
		return nil, err
	}
	categories, err := ListCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	for _, a := range areas {
		area := url.PathEscape(strings.ToLower(a.Name))
		sm.URLs = append(sm.URLs, SitemapURL{
			Loc:        baseURL + "/properties/" + area,
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
		for _, c := range categories {
			sm.URLs = append(sm.URLs, SitemapURL{
				Loc:        baseURL + "/properties/" + area + "/" + url.PathEscape(strings.ToLower(c.Name)),
				ChangeFreq: "daily",
				Priority:   "0.6",
			})
		}
	}

	return sm, nil
}
