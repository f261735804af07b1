package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/prometheus/prompb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
)

func TestRosterSnapshot_Run(t *testing.T) {
	var received prompb.WriteRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		compressed, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		data, err := snappy.Decode(nil, compressed)
		require.NoError(t, err)
		require.NoError(t, proto.Unmarshal(data, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := roster.NewStore(roster.DefaultActivities())
	pusher := metrics.NewPusher(metrics.PushConfig{
		URL:    srv.URL,
		Prefix: "activities",
		Job:    "activity-server",
	})

	snapshot := newRosterSnapshot(store, pusher)
	require.NoError(t, snapshot.Run())

	// One series per activity plus the catalog size.
	assert.Len(t, received.Timeseries, len(roster.DefaultActivities())+1)

	names := make(map[string]bool)
	for _, ts := range received.Timeseries {
		for _, label := range ts.Labels {
			if label.Name == "__name__" {
				names[label.Value] = true
			}
		}
	}
	assert.True(t, names["activities_roster_size"])
	assert.True(t, names["activities_catalog_size"])
}

func TestRosterSnapshot_PushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := roster.NewStore(roster.DefaultActivities())
	pusher := metrics.NewPusher(metrics.PushConfig{URL: srv.URL})

	snapshot := newRosterSnapshot(store, pusher)
	assert.Error(t, snapshot.Run())
}
