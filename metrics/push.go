package metrics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/prometheus/prompb"
)

// DefaultTimeout is the default timeout for remote write requests.
const DefaultTimeout = 30 * time.Second

// Sample is a single metric point to push.
type Sample struct {
	Name      string
	Value     float64
	Labels    map[string]string
	Timestamp time.Time
}

// Pusher sends samples to a VictoriaMetrics/Prometheus remote write endpoint.
type Pusher struct {
	url        string
	httpClient *http.Client
	prefix     string
	job        string
}

// PushConfig configures a Pusher.
type PushConfig struct {
	// URL is the base URL of the remote write endpoint (e.g., "http://localhost:8428").
	URL string
	// Prefix is prepended to every metric name, followed by an underscore.
	Prefix string
	// Job is added as the job label on every sample.
	Job string
	// Timeout is the HTTP client timeout. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// NewPusher creates a Pusher for the given remote write endpoint.
func NewPusher(cfg PushConfig) *Pusher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Pusher{
		url:        cfg.URL + "/api/v1/write",
		httpClient: &http.Client{Timeout: timeout},
		prefix:     cfg.Prefix,
		job:        cfg.Job,
	}
}

// Push sends the samples as a single remote write request.
func (p *Pusher) Push(ctx context.Context, samples []Sample) error {
	if len(samples) == 0 {
		return nil
	}

	timeseries := make([]prompb.TimeSeries, 0, len(samples))
	for _, sample := range samples {
		timeseries = append(timeseries, p.sampleToTimeSeries(sample))
	}

	req := &prompb.WriteRequest{
		Timeseries: timeseries,
	}

	data, err := proto.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling write request: %w", err)
	}

	compressed := snappy.Encode(nil, data)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Encoding", "snappy")
	httpReq.Header.Set("Content-Type", "application/x-protobuf")
	httpReq.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// sampleToTimeSeries converts a Sample to Prometheus TimeSeries format.
func (p *Pusher) sampleToTimeSeries(sample Sample) prompb.TimeSeries {
	labels := make([]prompb.Label, 0, len(sample.Labels)+2)

	name := sample.Name
	if p.prefix != "" {
		name = p.prefix + "_" + name
	}
	labels = append(labels, prompb.Label{
		Name:  "__name__",
		Value: name,
	})
	if p.job != "" {
		labels = append(labels, prompb.Label{
			Name:  "job",
			Value: p.job,
		})
	}
	for k, v := range sample.Labels {
		labels = append(labels, prompb.Label{
			Name:  k,
			Value: v,
		})
	}

	timestamp := sample.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return prompb.TimeSeries{
		Labels: labels,
		Samples: []prompb.Sample{
			{
				Value:     sample.Value,
				Timestamp: timestamp.UnixMilli(),
			},
		},
	}
}
