// Package bench compares the algorithms on many seeded random sequences,
// running each session without pauses and in parallel.
package bench
