package profile

import (
	"github.com/utlx-lang/utlx/profiler"
)

// Profiler controls the lifecycle of runtime profiling sessions.
//
// Call [Profiler.Start] to begin profiling and [Profiler.Stop] to write all
// enabled profiles. The pprof plumbing itself lives in
// [github.com/utlx-lang/utlx/profiler]; Profiler is a thin adapter that
// copies [Config]'s CLI-bound fields onto a [profiler.Profiler] and
// delegates every lifecycle call to it, so the two packages share one
// implementation of "write these pprof profiles" instead of two.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	Config
	inner profiler.Profiler
}

// Start configures runtime profiling rates and starts CPU profiling if enabled.
// Call [Profiler.Stop] when profiling is complete to write snapshot profiles.
func (c *Profiler) Start() error {
	c.inner = profiler.New()
	c.inner.CPUProfile = c.CPUProfile
	c.inner.HeapProfile = c.HeapProfile
	c.inner.AllocsProfile = c.AllocsProfile
	c.inner.GoroutineProfile = c.GoroutineProfile
	c.inner.ThreadcreateProfile = c.ThreadcreateProfile
	c.inner.BlockProfile = c.BlockProfile
	c.inner.MutexProfile = c.MutexProfile
	c.inner.MemProfileRate = c.MemProfileRate
	c.inner.BlockProfileRate = c.BlockProfileRate
	c.inner.MutexProfileFraction = c.MutexProfileFraction

	return c.inner.Start()
}

// Stop stops CPU profiling and writes all enabled snapshot profiles.
func (c *Profiler) Stop() error {
	return c.inner.Stop()
}
