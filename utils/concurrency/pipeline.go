package concurrency

// IndexedResult is one slot of a RunIndexed call: the value produced by
// slot i, whether it completed, and the error it returned (if any).
type IndexedResult[T any] struct {
	Value T
	Done  bool
	Err   error
}

// RunIndexed runs produce(0..n-1) with up to workers concurrent goroutines
// via a ResourceManager, and returns one IndexedResult per slot in slot
// order (not completion order).
//
// Because the underlying ResourceManager stops handing out new work once an
// error has been recorded (see Run), a task that never got to run is
// reported back with Done == false rather than a zero Value silently
// masquerading as a real result -- the caller (e.g. a work partitioner) can
// tell "this slab crashed" apart from "this slab was never attempted
// because an earlier one crashed".
func RunIndexed[T any](n, workers int, produce func(i int) (T, error)) []IndexedResult[T] {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	slots := make([]IndexedResult[T], n)

	rm := NewRessourceManager(make([]struct{}, workers))

	for i := 0; i < n; i++ {
		i := i
		rm.Run(func(struct{}) error {
			v, err := produce(i)
			slots[i] = IndexedResult[T]{Value: v, Done: true, Err: err}
			return err
		})
	}

	rm.Wait()

	return slots
}
