// Package interval provides the rate-multiplexed update scheduler that drives
// dashboard property computations.
//
// # Reading Guide
//
//   - history.go: fixed-capacity sliding window of recent frames
//   - registry.go: Hz -> ordered task buckets, validated once at startup
//   - schedule.go: integer modulo firing rule for each declared rate
//   - cycle.go: one host tick (push, advance counter, fan out to due buckets)
//
// # Timing Model
//
// The host calls Cycle.Advance once per rendered frame (nominally 60 times a
// second). A wrapping counter in [0, Modulus) selects which rate buckets fire;
// a task declared at h Hz runs exactly h times per counter wrap, evenly spaced
// by Modulus/h ticks. Everything runs synchronously inside Advance, so tasks
// must not block.
package interval
