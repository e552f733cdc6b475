package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// requestsCreated counts persisted submissions by kind (free or paid).
	requestsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "song_requests_created_total",
			Help: "Total number of song requests created.",
		},
		[]string{"kind"},
	)

	// freeConflicts counts submissions that lost the free slot to a
	// concurrent submission from the same identity and were charged instead.
	freeConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "song_request_free_conflicts_total",
			Help: "Submissions re-priced as paid after losing the free slot race.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsCreated, freeConflicts)
}

func kindOf(free bool) string {
	if free {
		return "free"
	}
	return "paid"
}
