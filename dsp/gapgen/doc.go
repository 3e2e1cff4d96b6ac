// Package gapgen synthesizes gap masks for long, regularly sampled time
// series.
//
// Gaps are placed uniformly at random, as a Poisson process (exponential
// spacings laid out from the start of the series) or periodically with
// optional timing jitter. Overlapping gaps are pushed back by a single greedy
// pass, gaps running into the end of the series are dropped, and the
// surviving gaps are turned into a mask with package mask.
//
// All randomness is drawn from the rand.Source passed to Generate, so a
// seeded source reproduces a mask exactly.
package gapgen
