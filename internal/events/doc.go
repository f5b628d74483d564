// Package events defines the outbound event contract between the sorting
// core and any rendering surface.
//
// The core never touches screen coordinates. It emits abstract events:
//
//   - [ElementCreated]: one per element after a generate
//   - [SwapStarted], [ElementsSwapped]: the two halves of an animated swap
//   - [NoSwapConfirmed]: a comparison that left the pair in order
//   - [ElementSettled], [ElementConfirmed]: cosmetic position markers
//   - [TrackerMoved]: named markers such as the selection sort minimum
//   - [CounterUpdated], [SortCompleted]: progress
//
// A renderer implements [Sink] and translates events into drawing calls.
package events
