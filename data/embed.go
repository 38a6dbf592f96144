package data

import (
	_ "embed"
)

// SeedJSON holds the default settings, Haryana districts, categories and sample listings
//
//go:embed seed.json
var SeedJSON []byte
