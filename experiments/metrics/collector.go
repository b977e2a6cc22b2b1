package metrics

import (
	"sync/atomic"
	"time"
)

// EvalMetric summarizes one win-analysis run over a single game.
type EvalMetric struct {
	Positions int // (position, turn) pairs evaluated
	MemoHits  int // evaluations answered from the memo table
	Duration  time.Duration
}

// Collector gathers evaluation counters. The counters are atomic so a shared
// evaluator may be populated from several goroutines.
type Collector interface {
	Start()
	AddPosition()
	AddMemoHit()
	Complete() EvalMetric
}

type collector struct {
	startTime time.Time
	positions atomic.Int64
	memoHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.positions.Store(0)
	m.memoHits.Store(0)
}

func (m *collector) AddPosition() {
	m.positions.Add(1)
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) Complete() EvalMetric {
	return EvalMetric{
		Positions: int(m.positions.Load()),
		MemoHits:  int(m.memoHits.Load()),
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()               {}
func (m *dummyCollector) AddPosition()         {}
func (m *dummyCollector) AddMemoHit()          {}
func (m *dummyCollector) Complete() EvalMetric { return EvalMetric{} }
