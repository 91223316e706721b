package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Candidates   int
	NodesVisited int
	Cutoffs      int
}

type Collector interface {
	Start(goroutines int)
	AddResult(r Result)
	Complete() SearchMetric
}

// collector aggregates the results of the searches run for one decision. It
// is safe for concurrent use by root workers.
type collector struct {
	goroutines int
	startTime  time.Time
	candidates atomic.Int64
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddResult(r Result) {
	m.candidates.Add(1)
	m.nodes.Add(int64(r.NodesVisited))
	m.cutoffs.Add(int64(r.Cutoffs))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Candidates:   int(m.candidates.Load()),
		NodesVisited: int(m.nodes.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
	}
}
