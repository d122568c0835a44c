package scheduler

// Tracker holds the running cumulative mean of availability fractions per
// domain. State is O(1) per domain no matter how long the process runs, and
// it is owned exclusively by the Monitor's loop; nothing else writes to it.
type Tracker struct {
	averages map[string]float64
}

// NewTracker seeds one zero-average entry per known domain host.
func NewTracker(hosts []string) *Tracker {
	m := make(map[string]float64, len(hosts))
	for _, h := range hosts {
		m[h] = 0
	}
	return &Tracker{averages: m}
}

// Update folds one cycle's fraction into the domain's running mean, where
// cycle is the global 1-based index of the current cycle. Algebraically this
// is the arithmetic mean of every fraction seen so far, so the first update
// returns the fraction exactly regardless of the seed value.
func (t *Tracker) Update(host string, fraction float64, cycle int) float64 {
	avg := (t.averages[host]*float64(cycle-1) + fraction) / float64(cycle)
	t.averages[host] = avg
	return avg
}

// Average returns the current running mean for a host.
func (t *Tracker) Average(host string) float64 {
	return t.averages[host]
}
