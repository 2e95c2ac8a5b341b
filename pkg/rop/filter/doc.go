// Package filter projects a single-pass sequence of outcomes onto one of its
// variants. The projections are lazy, keep no buffer and pull the source
// exactly once; a callback may observe the discarded variant in order.
package filter
