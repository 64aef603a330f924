// internal/pipeline/sim.go
package pipeline

import (
	"mirureader-core/engine"
	"mirureader-core/primer"
)

// Simulator is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Simulator interface {
	SimulateAll(seqID string, seq []byte, pairs []primer.Pair) []engine.Amplimer
}
