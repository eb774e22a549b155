package coursegen

// Plan describes how a generation run is split across transport calls.
type Plan struct {
	// Batches is the number of generation calls.
	Batches int

	// Distribution holds the module count per batch, in batch order.
	// Entries sum to the requested total.
	Distribution []int
}

// PlanBatches decides the batch count for a module total and computes the
// balanced per-batch distribution.
func PlanBatches(modules int) Plan {
	b := OptimalBatches(modules)
	return Plan{
		Batches:      b,
		Distribution: Distribute(modules, b),
	}
}

// OptimalBatches maps a module count to a batch count. The thresholds keep
// each call's output under the transport's token ceiling while minimizing
// the number of calls.
func OptimalBatches(modules int) int {
	switch {
	case modules <= 5:
		return 1
	case modules <= 8:
		return 2
	case modules <= 12:
		return 3
	default:
		return 4
	}
}

// Distribute splits total modules across batches as evenly as possible,
// assigning any remainder to the earliest batches. The difference between
// any two entries is at most 1.
func Distribute(total, batches int) []int {
	if batches < 1 {
		batches = 1
	}
	base := total / batches
	remainder := total % batches

	dist := make([]int, batches)
	for i := range dist {
		dist[i] = base
		if i < remainder {
			dist[i]++
		}
	}
	return dist
}

// ModuleRange returns the 1-based global module numbers covered by the
// given 1-based batch number.
func (p Plan) ModuleRange(batchNum int) (first, last int) {
	first = 1
	for i := 0; i < batchNum-1; i++ {
		first += p.Distribution[i]
	}
	last = first + p.Distribution[batchNum-1] - 1
	return first, last
}
