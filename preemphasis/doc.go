// Package preemphasis implements the first-order fixed-point IIR
// preemphasis/deemphasis filter pair applied before (and undone after)
// LPC analysis.
package preemphasis
