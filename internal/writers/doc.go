// Package writers turns genotype profiles into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, details, JSON/JSONL).
//   • core/genotype stays domain-only; internal/app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
