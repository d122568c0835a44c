package domain

import "time"

// RequestSpec is everything needed to issue one probe request.
type RequestSpec struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// Endpoint is a single named request to be probed. Immutable after load.
type Endpoint struct {
	Name    string      `json:"name"`
	Request RequestSpec `json:"request"`
}

// Group is one monitored domain: every endpoint whose URL shares the same
// host component. Group order and endpoint order are fixed at load time and
// never change for the lifetime of the process.
type Group struct {
	Host      string     `json:"host"`
	Endpoints []Endpoint `json:"endpoints"`
}

// CycleResult maps a domain host to the availability fraction measured in a
// single monitoring cycle. Produced fresh each cycle, consumed immediately.
type CycleResult map[string]float64

// AvailabilitySnapshot is the per-domain state exposed after each cycle.
type AvailabilitySnapshot struct {
	Domain       string    `json:"domain"`
	Average      float64   `json:"average"`
	LastFraction float64   `json:"last_fraction"`
	Cycles       int       `json:"cycles"`
	UpdatedAt    time.Time `json:"updated_at"`
}
