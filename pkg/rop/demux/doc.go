// Package demux splits one single-pass sequence of outcomes into two lazy
// views, one of successes and one of failures, that can be consumed in any
// order and from any number of goroutines.
//
// The source is pulled through a single cursor, at most once per element.
// A view that meets an element of the other variant while looking for its
// own parks it in the other view's spillover FIFO.
//
// Locking:
//   - the cursor mutex is held for the whole search of one Next call;
//   - while holding it, a view may lock only the opposite spillover, to append,
//     and unlocks it before the next source step;
//   - a view reads its own spillover without ever holding the cursor;
//   - Close takes the cursor, then each spillover in turn.
//
// No lock is ever taken while a spillover mutex is held, so the order is
// cursor before spillover everywhere.
//
// Key operations:
// - New: wrap a source iter.Seq[rop.Outcome[S, E]]
// - NextSuccess/NextFailure: produce the next element of a view or report its end
// - Successes/Failures: range-over-func views
// - Close: release the source and drop whatever is still buffered
package demux
