package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval is the target duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Wait blocks until the next tick is due.
func (f *FixedStep) Wait() {
	for !f.ShouldStep() {
		time.Sleep(f.step / 4)
	}
}

// PresentGate decides which ticks get shown. Presenting every tick makes
// fast-changing patterns flash, so the host only pushes a new frame every
// Every ticks.
type PresentGate struct {
	every int
	ticks int
}

// NewPresentGate returns a gate that opens on every n-th tick. n < 1 opens on
// every tick.
func NewPresentGate(n int) *PresentGate {
	if n < 1 {
		n = 1
	}
	return &PresentGate{every: n}
}

// Every returns the present interval in ticks.
func (p *PresentGate) Every() int { return p.every }

// Tick records one simulated tick and reports whether it should be shown.
func (p *PresentGate) Tick() bool {
	p.ticks++
	if p.ticks >= p.every {
		p.ticks = 0
		return true
	}
	return false
}

// Reset makes the next tick the first of a new interval.
func (p *PresentGate) Reset() { p.ticks = 0 }
