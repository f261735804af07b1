package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/prometheus/prompb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPusher_Push(t *testing.T) {
	var received prompb.WriteRequest
	var headers http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		assert.Equal(t, "/api/v1/write", r.URL.Path)

		compressed, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		data, err := snappy.Decode(nil, compressed)
		require.NoError(t, err)
		require.NoError(t, proto.Unmarshal(data, &received))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pusher := NewPusher(PushConfig{
		URL:    srv.URL,
		Prefix: "activities",
		Job:    "activity-server",
	})

	now := time.Now()
	err := pusher.Push(context.Background(), []Sample{
		{
			Name:      "roster_size",
			Value:     3,
			Labels:    map[string]string{"activity": "Chess Club"},
			Timestamp: now,
		},
		{
			Name:  "activities_total",
			Value: 7,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "snappy", headers.Get("Content-Encoding"))
	assert.Equal(t, "application/x-protobuf", headers.Get("Content-Type"))
	assert.Equal(t, "0.1.0", headers.Get("X-Prometheus-Remote-Write-Version"))

	require.Len(t, received.Timeseries, 2)

	labels := labelMap(received.Timeseries[0].Labels)
	assert.Equal(t, "activities_roster_size", labels["__name__"])
	assert.Equal(t, "activity-server", labels["job"])
	assert.Equal(t, "Chess Club", labels["activity"])

	require.Len(t, received.Timeseries[0].Samples, 1)
	assert.Equal(t, float64(3), received.Timeseries[0].Samples[0].Value)
	assert.Equal(t, now.UnixMilli(), received.Timeseries[0].Samples[0].Timestamp)
}

func TestPusher_Push_NoSamples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	}))
	defer srv.Close()

	pusher := NewPusher(PushConfig{URL: srv.URL})
	assert.NoError(t, pusher.Push(context.Background(), nil))
}

func TestPusher_Push_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of space", http.StatusInternalServerError)
	}))
	defer srv.Close()

	pusher := NewPusher(PushConfig{URL: srv.URL})
	err := pusher.Push(context.Background(), []Sample{{Name: "x", Value: 1}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func labelMap(labels []prompb.Label) map[string]string {
	out := make(map[string]string, len(labels))
	for _, l := range labels {
		out[l.Name] = l.Value
	}
	return out
}
