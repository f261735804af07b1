package server

import (
	"context"
	"time"

	"github.com/mergington/activities/metrics"
)

const snapshotPushTimeout = 30 * time.Second

// SizeSnapshotter provides participant counts for the snapshot job.
type SizeSnapshotter interface {
	Sizes() map[string]int
}

// rosterSnapshot pushes current roster sizes to the remote write endpoint.
// It implements cron.Runnable.
type rosterSnapshot struct {
	store  SizeSnapshotter
	pusher *metrics.Pusher
}

func newRosterSnapshot(store SizeSnapshotter, pusher *metrics.Pusher) *rosterSnapshot {
	return &rosterSnapshot{
		store:  store,
		pusher: pusher,
	}
}

// Run builds one sample per activity plus a catalog size sample and pushes
// them as a single batch.
func (rs *rosterSnapshot) Run() error {
	sizes := rs.store.Sizes()
	now := time.Now()

	samples := make([]metrics.Sample, 0, len(sizes)+1)
	for activity, size := range sizes {
		samples = append(samples, metrics.Sample{
			Name:      "roster_size",
			Value:     float64(size),
			Labels:    map[string]string{"activity": activity},
			Timestamp: now,
		})
	}
	samples = append(samples, metrics.Sample{
		Name:      "catalog_size",
		Value:     float64(len(sizes)),
		Timestamp: now,
	})

	ctx, cancel := context.WithTimeout(context.Background(), snapshotPushTimeout)
	defer cancel()
	return rs.pusher.Push(ctx, samples)
}
