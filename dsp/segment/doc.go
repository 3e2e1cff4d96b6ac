// Package segment splits a gapped series into its contiguous valid segments
// and maps each segment to a frequency axis.
//
// Segments are the complement of the gaps found in a mask: with gaps
// [s0,e0), [s1,e1), ... the segments are [0,s0), [e0,s1), ..., [e_last,N).
// Adjacent gaps produce zero-length segments, which are kept so that segment
// k always sits between gap k-1 and gap k.
package segment
