package utils

import (
	"sync"
	"time"
)

// HealthStatus is the liveness snapshot served on /health. This service keeps
// no external connections, so health reduces to process uptime.
type HealthStatus struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	startedAt time.Time
	startOnce sync.Once
)

// GetHealthStatus returns the current liveness snapshot.
func GetHealthStatus() HealthStatus {
	startOnce.Do(func() { startedAt = time.Now() })
	return HealthStatus{
		Status:    "ok",
		StartedAt: startedAt,
		CheckedAt: time.Now(),
	}
}

// MarkStarted pins the process start time; called once from main.
func MarkStarted() {
	startOnce.Do(func() { startedAt = time.Now() })
}
