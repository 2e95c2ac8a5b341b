// Package core contains plumbing utilities: channel/sequence bridges, worker
// configuration via context, and the locomotive that drives a puller from
// several goroutines. It does not touch outcomes itself; packages like lite
// use it to consume demultiplexed views concurrently.
package core
