// Package conv provides the linear convolution routines used to push event
// counts through coupling filters.
//
// Two strategies are available:
//
//   - Direct: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add: FFT-based block convolution for long kernels
//
// [Convolve] picks one from the kernel length; [Causal] truncates the full
// result to the length of the signal, so output sample i only depends on
// input samples 0..i.
//
//	full, err := conv.Convolve(counts, filter)
//	drive, err := conv.Causal(counts, filter)
package conv
