// Package rx provides the core reactive-stream primitives for rxstorm.
//
// The package defines the event grammar, the observable/observer contract,
// the disposal lifecycle, and the operators that relocate work between
// execution contexts. Subject variants (multicast producers) live in the
// rx/subject subpackage; concrete schedulers live in internal/sched.
//
// # Event Grammar
//
// Every subscription observes a sequence matching the grammar
//
//	Next* (Error | Completed)?
//
// Once a terminal event (Error or Completed) has been delivered to an
// observer, a conforming source never invokes that observer again. Sources
// built with Create, and every subject in rx/subject, enforce the grammar
// mechanically by wrapping downstream observers with Serialize.
//
// # Delivery Contract
//
// Events for a single observer are delivered strictly sequentially - two
// events are never delivered concurrently to the same observer, even when
// they are produced from multiple goroutines. Ordering across distinct
// subscriptions to the same source is unspecified.
//
// # Disposal
//
// Subscribe returns a Disposable. Disposing it is idempotent, synchronously
// stops further delivery to the observer, and releases resources allocated
// for the subscription. It does not interrupt producer-side work that has
// already started on another goroutine.
//
// # Strict Mode
//
// Protocol violations (an event arriving after a terminal event) are
// programming defects. In strict mode (development) they panic with a
// diagnostic; otherwise (production) the offending event is dropped. See
// SetStrict.
package rx
