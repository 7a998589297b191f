// Package profiler aggregates pipeline frame statistics and process memory
// statistics and reports them through the engine logger at a fixed interval.
package profiler

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-glow/common"
	"github.com/Carmen-Shannon/oxy-glow/engine/renderer/pipeline"
)

// Report is one interval of aggregated statistics.
type Report struct {
	Frames      int
	Elapsed     time.Duration
	FPS         float64
	Draws       int
	DrawsPerSec float64
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
}

// Profiler tracks frame rate, draw calls and memory statistics.
// Call Tick once per executed frame.
type Profiler struct {
	now            func() time.Time
	logger         *slog.Logger
	updateInterval time.Duration

	frameCount     int
	drawCount      int
	lastTime       time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Report
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - opts: a variadic list of ProfilerBuilderOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(opts ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick records one frame. When the update interval has elapsed the interval
// is summarized into a Report and logged at Info.
//
// Parameters:
//   - stats: the statistics of the frame, usually Pipeline.LastFrameStats
//
// Returns:
//   - bool: true if a report was produced this tick, false otherwise
func (p *Profiler) Tick(stats pipeline.FrameStats) bool {
	p.frameCount++
	p.drawCount += stats.Draws
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	r := Report{
		Frames:      p.frameCount,
		Elapsed:     elapsed,
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		Draws:       p.drawCount,
		DrawsPerSec: float64(p.drawCount) / elapsed.Seconds(),
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := p.memStats.NumGC
	if gcCount > 0 {
		r.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > r.MaxPauseUs {
				r.MaxPauseUs = pause
			}
		}
	}

	common.Coalesce(p.logger, common.Logger()).Info("frame profile",
		"fps", r.FPS,
		"draws_per_frame", float64(r.Draws)/float64(r.Frames),
		"heap_mb", r.HeapMB,
		"alloc_rate_mb", r.AllocRateMB,
		"gc", r.GCCount,
		"gc_last_us", r.LastPauseUs,
		"gc_max_us", r.MaxPauseUs,
		"sys_mb", r.SysMB)

	p.last = r
	p.frameCount = 0
	p.drawCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// LastReport returns the most recent report, or the zero Report if none was produced yet.
func (p *Profiler) LastReport() Report {
	return p.last
}
