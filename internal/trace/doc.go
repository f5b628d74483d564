// Package trace records the event stream of a session and exports it as
// CSV or JSON, together with a run summary and the disorder curve (the
// inversion count after every swap).
package trace
