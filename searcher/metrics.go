package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes the work done by one ChooseAction call.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Expansions int64 // states created by applying actions
	Leaves     int64 // leaf evaluations
}

type Collector interface {
	Start()
	AddExpansions(n int)
	AddLeaf()
	Complete() SearchMetrics
}

// collector counts atomically so a future parallel evaluator can share
// it across sibling subtrees unchanged.
type collector struct {
	startTime  time.Time
	expansions atomic.Int64
	leaves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.expansions.Store(0)
	c.leaves.Store(0)
}

func (c *collector) AddExpansions(n int) {
	c.expansions.Add(int64(n))
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
		Expansions: c.expansions.Load(),
		Leaves:     c.leaves.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                  {}
func (c *dummyCollector) AddExpansions(n int)     {}
func (c *dummyCollector) AddLeaf()                {}
func (c *dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
