// Package window generates the apodization tapers used at gap edges.
//
// Rectangular, Hann and Blackman follow the usual symmetric definitions
// (zero at both ends, peak at the centre). The modified Hann window keeps a
// flat top and only tapers a configurable number of samples at each end,
// which preserves unity gain over most of a data segment while damping the
// transition next to a gap.
package window
