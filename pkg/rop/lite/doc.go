// Package lite provides lightweight helpers that consume demultiplexed views
// from several goroutines and hand the values over on channels.
//
// Common usage:
// - Run: drive one puller with a fixed number of lines (goroutines)
// - Split: drain both views of a demux.Demultiplexer concurrently
//
// The number of lines may also come from core.WithWorkerOptions.
package lite
