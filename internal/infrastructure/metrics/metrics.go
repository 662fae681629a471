package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikeToggles counts toggle outcomes: liked, unliked, not_found, error.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "likeboard_like_toggles_total",
		Help: "Like toggle attempts by outcome.",
	}, []string{"result"})

	OriginDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "likeboard_origin_denials_total",
		Help: "Requests rejected by the origin admission policy.",
	})

	// CacheLookups counts post cache reads by kind (detail, list) and result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "likeboard_cache_lookups_total",
		Help: "Post cache lookups.",
	}, []string{"kind", "result"})

	// EventsPublished counts post events by type and result: queued or dropped
	// at the request, delivered or failed by the dispatch worker.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "likeboard_events_published_total",
		Help: "Post events handed to the event stream.",
	}, []string{"type", "result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "likeboard_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "likeboard_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
