// Package lpc implements linear predictive coding analysis, fixed-point
// coefficient quantization, and the integer-domain prediction/synthesis
// pair used to losslessly code audio sample blocks.
//
// A Calculator owns the scratch buffers for one analysis worker; three
// estimators (Levinson-Durbin on the sample autocorrelation, Burg's
// lattice method, and an iteratively reweighted auxiliary-function L1
// method) produce double-precision LPC coefficients from a windowed
// sample block. QuantizeCoefficients turns those into the fixed-point
// integer coefficients that Predict and Synthesize consume, forming an
// exact inverse pair over signed 32-bit samples.
package lpc
