// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/scheduler"
	"github.com/olegiv/folio/internal/version"
)

const healthCheckKey = "health:check"

// JobLister reports the background jobs and their last outcomes.
type JobLister interface {
	List() []scheduler.JobInfo
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	cache         cache.Cacher
	jobs          JobLister
	assetsDir     string
	exposeDetails bool
	startTime     time.Time
}

// NewHealthHandler creates a health handler. With exposeDetails set (in
// development) /health includes per-check results; otherwise callers only
// see the overall status.
func NewHealthHandler(c cache.Cacher, assetsDir string, exposeDetails bool) *HealthHandler {
	return &HealthHandler{
		cache:         c,
		assetsDir:     assetsDir,
		exposeDetails: exposeDetails,
		startTime:     time.Now(),
	}
}

// SetJobs adds the scheduler's jobs to the detailed health response. It
// must be called before the handler serves requests.
func (h *HealthHandler) SetJobs(jobs JobLister) {
	h.jobs = jobs
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatusPublic is the minimal health response.
type HealthStatusPublic struct {
	Status string `json:"status"`
}

// HealthStatus is the detailed health response.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
	Cache     *cache.Stats     `json:"cache,omitempty"`
	Jobs      []JobStatus      `json:"jobs,omitempty"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// JobStatus is one background job in the detailed health response.
type JobStatus struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	Runs      int        `json:"runs"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	cacheCheck := h.checkCache(r.Context())
	assetsCheck := h.checkAssets()

	overallStatus := "healthy"
	if cacheCheck.Status != "healthy" || assetsCheck.Status != "healthy" {
		overallStatus = "degraded"
	}
	statusCode := http.StatusOK
	if cacheCheck.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	if !h.exposeDetails {
		writeJSON(w, statusCode, HealthStatusPublic{Status: overallStatus})
		return
	}

	status := HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   version.Get(),
		Checks: map[string]Check{
			"cache":  cacheCheck,
			"assets": assetsCheck,
		},
	}
	if sp, ok := h.cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		status.Cache = &stats
	}
	if h.jobs != nil {
		status.Jobs = jobStatuses(h.jobs.List())
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = getSystemInfo()
	}
	writeJSON(w, statusCode, status)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready. Backdrops and thumbnails go through
// the cache, so the service is ready once the cache answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	check := h.checkCache(r.Context())
	if check.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	resp := map[string]string{"status": "not_ready"}
	if h.exposeDetails {
		resp["message"] = check.Message
	}
	writeJSON(w, http.StatusServiceUnavailable, resp)
}

// checkCache writes, reads back and deletes a sentinel key.
func (h *HealthHandler) checkCache(ctx context.Context) Check {
	if h.cache == nil {
		return Check{Status: "healthy", Message: "Cache disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	want := []byte(start.UTC().Format(time.RFC3339Nano))
	err := h.cache.Set(ctx, healthCheckKey, want, 10*time.Second)
	var got []byte
	if err == nil {
		got, err = h.cache.Get(ctx, healthCheckKey)
	}
	_ = h.cache.Delete(ctx, healthCheckKey)
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	if !bytes.Equal(got, want) {
		return Check{Status: "unhealthy", Message: "Cache returned a stale value", Latency: latency.String()}
	}
	return Check{Status: "healthy", Message: "Reachable", Latency: latency.String()}
}

// checkAssets checks the assets directory and its free space. A missing
// directory is healthy: the page falls back to placeholders.
func (h *HealthHandler) checkAssets() Check {
	if _, err := os.Stat(h.assetsDir); os.IsNotExist(err) {
		return Check{Status: "healthy", Message: "Assets directory does not exist, placeholders in use"}
	}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(h.assetsDir, &stat); err != nil {
		return Check{Status: "unhealthy", Message: "Failed to check disk space: " + err.Error()}
	}

	availableBytes := stat.Bavail * uint64(stat.Bsize)
	available := formatBytes(availableBytes)

	const minSpace = 100 * 1024 * 1024
	if availableBytes < minSpace {
		return Check{Status: "degraded", Message: "Low disk space: " + available + " available"}
	}
	return Check{Status: "healthy", Message: available + " available"}
}

func jobStatuses(infos []scheduler.JobInfo) []JobStatus {
	out := make([]JobStatus, 0, len(infos))
	for _, info := range infos {
		js := JobStatus{
			Name:      info.Name,
			Schedule:  info.Schedule,
			Runs:      info.Runs,
			LastError: info.LastError,
		}
		if !info.LastRun.IsZero() {
			js.LastRun = &info.LastRun
		}
		if !info.NextRun.IsZero() {
			js.NextRun = &info.NextRun
		}
		out = append(out, js)
	}
	return out
}

func getSystemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
		MemSys:       formatBytes(m.Sys),
	}
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
