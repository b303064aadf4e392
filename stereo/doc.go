// Package stereo implements the lossless L/R <-> M/S integer stereo
// transform used ahead of per-channel LPC coding.
package stereo
