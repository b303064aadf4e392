// Package bitutil provides small branch-light bit-manipulation and
// checksum primitives shared by the LPC analysis/synthesis packages.
package bitutil
