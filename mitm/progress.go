package mitm

import "time"

// Progress describes a snapshot of an in-flight search phase. It is
// deliberately plain data: the core never imports a logging package
// itself, mirroring the reference implementation's bare print() status
// lines -- a caller wires Progress into whatever logger it likes.
type Progress struct {
	Phase   string
	Done    int64
	Total   int64
	Matches int
	Elapsed time.Duration
}

// ProgressFunc receives periodic Progress snapshots. A nil ProgressFunc
// disables reporting entirely.
type ProgressFunc func(Progress)

// reporter throttles calls to a ProgressFunc to once every `every` counted
// items, plus a call when done reaches total, so a caller wiring this into
// a slow logger isn't flooded.
type reporter struct {
	fn      ProgressFunc
	phase   string
	total   int64
	every   int64
	start   time.Time
	lastN   int64
}

func newReporter(fn ProgressFunc, phase string, total int64, every int64) *reporter {
	return &reporter{fn: fn, phase: phase, total: total, every: every, start: nowFunc()}
}

func (r *reporter) maybe(done int64, matches int) {
	if r.fn == nil {
		return
	}
	if done-r.lastN < r.every && done != r.total {
		return
	}
	r.lastN = done
	r.fn(Progress{
		Phase:   r.phase,
		Done:    done,
		Total:   r.total,
		Matches: matches,
		Elapsed: nowFunc().Sub(r.start),
	})
}

// nowFunc is a seam for deterministic testing; production code always uses
// time.Now.
var nowFunc = time.Now
