// Package subject provides the four multicast subject variants of the
// rxstorm runtime: Publish, Replay, Behavior, and Async.
//
// A subject is simultaneously an Observable (it fans emitted events out to
// every registered observer) and an Observer (events can be pushed into it
// imperatively, either through On or through the OnNext/OnError/OnCompleted
// methods). Subjects bridge imperative emission into a reactive pipeline.
//
// # Delivery Policies
//
//   - Publish: no buffer. Late subscribers receive nothing retroactively.
//   - Replay: keeps the last N values (or all of them) and replays the
//     buffer, in original order, to every new subscriber before live
//     delivery begins.
//   - Behavior: holds exactly one current value, seeded at construction.
//     New subscribers receive the current value first.
//   - Async: buffers only the most recent value and emits nothing until
//     completion, at which point every observer receives that single value
//     followed by Completed. An error discards the buffer.
//
// # Terminal Behavior
//
// Once a terminal event has been recorded a subject is closed: current
// observers receive the terminal event exactly once, the registry is
// cleared, and subsequent subscribers receive only the replayed terminal
// outcome. Further emissions into a closed subject are ignored.
//
// # Concurrency
//
// Subjects serialize their own bookkeeping (registry, buffers, terminal
// state) internally; subscribing, disposing, and emitting are safe to call
// from any goroutine. They do not serialize concurrent emissions from
// multiple producers: the relative order of racing OnNext calls is
// undefined, and callers with multiple producers must serialize emission
// themselves. Per-subscription delivery order and the event grammar are
// enforced for every observer regardless.
//
// Observers must not call back into the subject from within On; replay
// delivery happens under the subject's internal lock.
package subject
