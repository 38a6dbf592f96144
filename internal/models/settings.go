package models

import "time"

// SettingsID is the fixed primary key of the settings row.
const SettingsID = "global"

// Settings holds site branding, contact details and the maintenance flag.
// There is exactly one row, keyed by SettingsID.
type Settings struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SiteName        string    `gorm:"size:255;not null" json:"siteName"`
	HeroTitle       string    `gorm:"size:255;not null" json:"heroTitle"`
	HeroSubtitle    string    `gorm:"size:512;not null" json:"heroSubtitle"`
	HeroVideoURL    string    `gorm:"column:hero_video_url;size:1024;not null" json:"heroVideoUrl"`
	ContactPhone    string    `gorm:"size:32;not null" json:"contactPhone"`
	Whatsapp        string    `gorm:"size:32;not null" json:"whatsapp"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	HeadOffice      string    `gorm:"size:512;not null" json:"headOffice"`
	MaintenanceMode bool      `gorm:"not null;default:false" json:"maintenanceMode"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Settings
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the values used for any field the stored row leaves empty.
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		SiteName:     "Property Hub Haryana",
		HeroTitle:    "Find Your Dream Property in Haryana",
		HeroSubtitle: "Verified flats, plots, villas and commercial spaces across every district.",
		ContactPhone: "+91 99999 00000",
		Whatsapp:     "+91 99999 00000",
		Email:        "info@property.com",
		HeadOffice:   "Hisar, Haryana",
	}
}

// WithDefaults fills every empty string field from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	s.ID = SettingsID
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.SiteName, d.SiteName)
	fill(&s.HeroTitle, d.HeroTitle)
	fill(&s.HeroSubtitle, d.HeroSubtitle)
	fill(&s.HeroVideoURL, d.HeroVideoURL)
	fill(&s.ContactPhone, d.ContactPhone)
	fill(&s.Whatsapp, d.Whatsapp)
	fill(&s.Email, d.Email)
	fill(&s.HeadOffice, d.HeadOffice)
	return s
}
