// Package sorting implements the step schedules of the visualized
// algorithms.
//
// An [Algorithm] never reads values or moves elements directly; it only
// asks [Ops] to compare, swap, confirm, settle and move trackers. The
// [Registry] resolves user-facing names ("Bubble Sort") and slugs
// ("bubble") to algorithms.
package sorting
