package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for the render loop.
// Stats go to the log at a configurable interval; the last computed FPS is
// kept readable for on-screen overlays.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	lastFPS        float64
	logging        bool
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logging:        true,
	}
}

// SetLogging controls whether Tick writes stats to the log. FPS tracking
// keeps running either way so overlays can read it.
//
// Parameters:
//   - enabled: true to log stats at each interval
func (p *Profiler) SetLogging(enabled bool) {
	p.logging = enabled
}

// FPS returns the frame rate computed at the most recent logging interval.
// Returns 0 until the first interval elapses.
//
// Returns:
//   - float64: frames per second
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}

// Tick should be called once per frame to track frame timing.
// Logs FPS, live heap, allocation rate, and GC count when the update
// interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; TotalAlloc is cumulative and tracks churn.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	if p.logging {
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()
		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			p.lastFPS, allocMB, allocRateMB, p.memStats.NumGC)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
