package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks the outcome of pipeline runs for the health endpoints.
type Monitor struct {
	mu             sync.RWMutex
	lastRunSuccess bool
	lastRunTime    time.Time
	runsCompleted  int
	runsFailed     int
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// RecordSuccess marks a completed analysis run.
func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.runsCompleted++
	m.mu.Unlock()

	log.Printf("Run completed successfully - %s (took %v)", summary, duration)
}

// RecordPartialFailure notes a degraded run (for example a failed summary
// category) without flipping health status.
func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	log.Printf("PARTIAL FAILURE: %s (Duration: %v)", err.Error(), duration)
}

// RecordCriticalFailure marks an aborted analysis run.
func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.runsFailed++
	m.mu.Unlock()

	log.Printf("CRITICAL FAILURE: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRunTime.IsZero() {
		return "No analysis runs yet"
	}
	outcome := "succeeded"
	if !m.lastRunSuccess {
		outcome = "failed"
	}
	return fmt.Sprintf("Last run %s: %s (%d completed, %d failed)",
		outcome, m.lastRunTime.Format("Jan 2 15:04"), m.runsCompleted, m.runsFailed)
}
