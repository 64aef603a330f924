// Package pipeline streams reads through a Simulator on a bounded worker
// pool and hands every amplimer to a visit callback on one goroutine.
//
// The only contract to implement is Simulator (SimulateAll).
// Arrival order is not deterministic; callers sort Hits with Less.
package pipeline
