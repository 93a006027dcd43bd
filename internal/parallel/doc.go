// Package parallel runs independent indexed jobs on a bounded number of
// goroutines.
//
// The filter engine uses it to render every registered filter of a session
// at once. Jobs receive their index and must only write state owned by that
// index; results are therefore identical to a sequential loop.
package parallel
