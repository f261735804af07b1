package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	// StatusOK labels a signup/unregister attempt that succeeded.
	StatusOK = "ok"
	// StatusNotFound labels an attempt against an unknown activity.
	StatusNotFound = "not_found"
	// StatusRejected labels a duplicate signup or a spurious unregister.
	StatusRejected = "rejected"
)

// RosterMetrics tracks signup traffic and current roster sizes.
type RosterMetrics struct {
	signups         CounterVec
	unregistrations CounterVec
	rosterSize      GaugeVec
	activitiesTotal Gauge
}

// NewRosterMetrics creates and registers the roster metric set.
func NewRosterMetrics(reg Registry) (*RosterMetrics, error) {
	signups, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_signups_total",
		Help: "Signup attempts by activity and outcome.",
	}, []string{"activity", "status"})
	if err != nil {
		return nil, err
	}

	unregistrations, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_unregistrations_total",
		Help: "Unregister attempts by activity and outcome.",
	}, []string{"activity", "status"})
	if err != nil {
		return nil, err
	}

	rosterSize, err := reg.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_roster_size",
		Help: "Current number of participants per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, err
	}

	activitiesTotal, err := reg.NewGauge(prometheus.GaugeOpts{
		Name: "activities_total",
		Help: "Number of activities in the catalog.",
	})
	if err != nil {
		return nil, err
	}

	return &RosterMetrics{
		signups:         signups,
		unregistrations: unregistrations,
		rosterSize:      rosterSize,
		activitiesTotal: activitiesTotal,
	}, nil
}

// RecordSignup counts a signup attempt for the activity with the given status.
func (m *RosterMetrics) RecordSignup(activity, status string) {
	m.signups.With(prometheus.Labels{"activity": activity, "status": status}).Inc()
}

// RecordUnregister counts an unregister attempt for the activity with the given status.
func (m *RosterMetrics) RecordUnregister(activity, status string) {
	m.unregistrations.With(prometheus.Labels{"activity": activity, "status": status}).Inc()
}

// ObserveSizes refreshes the roster size gauges from a store snapshot.
func (m *RosterMetrics) ObserveSizes(sizes map[string]int) {
	for activity, size := range sizes {
		m.rosterSize.With(prometheus.Labels{"activity": activity}).Set(float64(size))
	}
	m.activitiesTotal.Set(float64(len(sizes)))
}
