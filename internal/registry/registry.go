// Package registry counts the native objects held by live wrappers. The counts back
// the diagnostics JSON and, with the diligent_debug build tag, leak reports.
package registry

import (
	"sort"

	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/diligent/internal/utils"
)

// Statistics summarizes the references a kind of wrapper has taken and returned.
type Statistics struct {
	Live     int
	Acquired int
	Released int
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.Live += other.Live
	s.Acquired += other.Acquired
	s.Released += other.Released
}

type liveObject struct {
	kind  string
	count int
	trace trace
}

type Registry struct {
	mutex   utils.OptionalRWMutex
	objects *swiss.Map[uintptr, *liveObject]
	kinds   *swiss.Map[string, *Statistics]
}

func New(useMutex bool) *Registry {
	return &Registry{
		mutex:   utils.OptionalRWMutex{UseMutex: useMutex},
		objects: swiss.NewMap[uintptr, *liveObject](64),
		kinds:   swiss.NewMap[string, *Statistics](16),
	}
}

// Default is the process-wide registry used by every wrapper.
var Default = New(true)

func (r *Registry) kindStats(kind string) *Statistics {
	stats, ok := r.kinds.Get(kind)
	if !ok {
		stats = &Statistics{}
		r.kinds.Put(kind, stats)
	}
	return stats
}

// Acquire records that a wrapper of the given kind now holds a reference to handle.
func (r *Registry) Acquire(kind string, handle uintptr) {
	if handle == 0 {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	obj, ok := r.objects.Get(handle)
	if !ok {
		obj = &liveObject{kind: kind, trace: captureTrace()}
		r.objects.Put(handle, obj)
	}
	obj.count++

	stats := r.kindStats(kind)
	stats.Live++
	stats.Acquired++
}

// Release records that a wrapper of the given kind returned its reference to handle.
func (r *Registry) Release(kind string, handle uintptr) {
	if handle == 0 {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if obj, ok := r.objects.Get(handle); ok {
		obj.count--
		if obj.count <= 0 {
			r.objects.Delete(handle)
		}
	}

	stats := r.kindStats(kind)
	stats.Live--
	stats.Released++
}

// References returns the number of live wrapper references to handle.
func (r *Registry) References(handle uintptr) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	obj, ok := r.objects.Get(handle)
	if !ok {
		return 0
	}
	return obj.count
}

// LiveObjects is the number of distinct native objects currently referenced.
func (r *Registry) LiveObjects() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.objects.Count()
}

// Statistics returns a copy of the per-kind counters.
func (r *Registry) Statistics() map[string]Statistics {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]Statistics, r.kinds.Count())
	r.kinds.Iter(func(kind string, stats *Statistics) bool {
		out[kind] = *stats
		return false
	})
	return out
}

// Total adds up the counters of every kind.
func (r *Registry) Total() Statistics {
	var total Statistics
	for _, stats := range r.Statistics() {
		total.AddStatistics(&stats)
	}
	return total
}

// Kinds returns the wrapper kinds seen so far in a stable order.
func (r *Registry) Kinds() []string {
	stats := r.Statistics()
	kinds := make([]string, 0, len(stats))
	for kind := range stats {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Leak describes a native object that still has live wrapper references.
type Leak struct {
	Kind       string
	Handle     uintptr
	References int
	// Trace is the stack of the first acquisition. It is only recorded in builds
	// with the diligent_debug tag.
	Trace string
}

// Leaks lists every native object that still has live wrapper references.
func (r *Registry) Leaks() []Leak {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var leaks []Leak
	r.objects.Iter(func(handle uintptr, obj *liveObject) bool {
		leaks = append(leaks, Leak{
			Kind:       obj.kind,
			Handle:     handle,
			References: obj.count,
			Trace:      string(obj.trace),
		})
		return false
	})
	sort.Slice(leaks, func(i, j int) bool {
		return leaks[i].Handle < leaks[j].Handle
	})
	return leaks
}
