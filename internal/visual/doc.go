// Package visual paces a sort run for display.
//
// [Sync] sits between an algorithm and the sequence model. Each decision
// becomes an event on the shared sink followed by one or more pauses:
//
//	swap      SwapStarted, pause, exchange (ElementsSwapped), pause
//	no swap   NoSwapConfirmed, pause
//	settle    ElementSettled, SettlePause
//	track     TrackerMoved, pause
//
// Pause length comes from the current [Speed] and is re-read every step.
// A [Scheduler] performs the wait; tests substitute [Instant] or [Recording].
package visual
