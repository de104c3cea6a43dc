package status

// Well-known metric names written by the frame loop and read by the overlay
const (
	Frames   = "frames"
	Spawned  = "spawned"
	Removed  = "removed"
	Contacts = "contacts"
	Rejected = "rejected"

	FPS      = "fps"
	SleepMs  = "sleep_ms"
	AdjustMs = "adjust_ms"
	WorkMs   = "work_ms"
)

// Registry is the central metrics facade
// Components cache pointers at construction and write directly on the frame path
type Registry struct {
	Counters *MetricMap[Counter]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[Counter](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter is shorthand for r.Counters.Get(name)
func (r *Registry) Counter(name string) *Counter {
	return r.Counters.Get(name)
}

// Gauge is shorthand for r.Gauges.Get(name)
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// TotalCount returns the number of metrics of every kind
func (r *Registry) TotalCount() int {
	return r.Counters.Len() + r.Gauges.Len()
}
