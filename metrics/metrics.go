// Package metrics collects counters over the lifetime of a handler's runtime.
// A Lambda execution environment serves many invocations before it is
// recycled, so the counters give a cheap view of how a warm instance has been
// behaving when a report line is logged.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Metrics collects counters for both handlers. It uses atomic operations so
// concurrent invocations sharing a runtime stay consistent.
type Metrics struct {
	noticesSent          int64 // Upload notices accepted by SES
	sendFailures         int64 // Upload notices rejected by SES
	registrationsApplied int64 // Bucket notification configurations written

	startTime time.Time // When this runtime started serving
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordNoticeSent increments the accepted notices counter
func (m *Metrics) RecordNoticeSent() {
	atomic.AddInt64(&m.noticesSent, 1)
}

// RecordSendFailure increments the rejected notices counter
func (m *Metrics) RecordSendFailure() {
	atomic.AddInt64(&m.sendFailures, 1)
}

// RecordRegistrationApplied increments the written configurations counter
func (m *Metrics) RecordRegistrationApplied() {
	atomic.AddInt64(&m.registrationsApplied, 1)
}

// Report is a point-in-time snapshot of the counters, ready for JSON log
// output.
type Report struct {
	StartTime            time.Time     `json:"startTime"`            // When this runtime started serving
	NoticesSent          int64         `json:"noticesSent"`          // Upload notices accepted by SES
	SendFailures         int64         `json:"sendFailures"`         // Upload notices rejected by SES
	RegistrationsApplied int64         `json:"registrationsApplied"` // Bucket configurations written
	Uptime               time.Duration `json:"uptime"`               // How long this runtime has served
}

// Snapshot returns a Report of the counters as of now.
func (m *Metrics) Snapshot() Report {
	return Report{
		StartTime:            m.startTime,
		NoticesSent:          atomic.LoadInt64(&m.noticesSent),
		SendFailures:         atomic.LoadInt64(&m.sendFailures),
		RegistrationsApplied: atomic.LoadInt64(&m.registrationsApplied),
		Uptime:               time.Since(m.startTime),
	}
}

// MarshalJSON implements json.Marshaler to render the uptime as a readable
// duration string in log output.
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(&struct {
		Alias
		Uptime string `json:"uptime"`
	}{
		Alias:  Alias(r),
		Uptime: r.Uptime.String(),
	})
}

// String returns a human-readable representation of the report
func (r Report) String() string {
	return fmt.Sprintf(
		"notices sent: %d, send failures: %d, registrations applied: %d, uptime: %s",
		r.NoticesSent,
		r.SendFailures,
		r.RegistrationsApplied,
		r.Uptime,
	)
}
