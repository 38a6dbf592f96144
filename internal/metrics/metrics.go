package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. HTTP metrics come from fiberprometheus; these share the default
// registry so both appear on /metrics.
var (
	// InquiriesReceived counts accepted inquiries by type
	InquiriesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propertyhub",
			Name:      "inquiries_received_total",
			Help:      "Total number of inquiries accepted from the public site",
		},
		[]string{"type"},
	)

	// InquiriesRejected counts submissions that failed validation, by field
	InquiriesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propertyhub",
			Name:      "inquiries_rejected_total",
			Help:      "Total number of inquiry submissions rejected by validation",
		},
		[]string{"field"},
	)

	// AreaOrderConflicts counts writes rejected by the area order guard,
	// split by whether the check or the unique index caught it
	AreaOrderConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propertyhub",
			Name:      "area_order_conflicts_total",
			Help:      "Total number of area writes rejected for a duplicate priority order",
		},
		[]string{"source"},
	)

	// ListingSearches counts public listing searches by scope
	ListingSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propertyhub",
			Name:      "listing_searches_total",
			Help:      "Total number of public listing searches",
		},
		[]string{"scope"},
	)

	// SettingsCacheLookups counts settings cache hits and misses
	SettingsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propertyhub",
			Name:      "settings_cache_lookups_total",
			Help:      "Settings cache lookups by result",
		},
		[]string{"result"},
	)
)
