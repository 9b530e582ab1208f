// Package blip implements a band-limited impulse resampler: it turns a
// sparse stream of amplitude-step events timestamped on a high-rate
// virtual clock into anti-aliased PCM samples at a target audio rate.
//
// A producer calls AddDelta zero or more times per frame with
// non-decreasing clock timestamps, then EndFrame to close the frame
// and publish newly available output samples, then ReadSamples to
// drain them. The buffer is a precise, allocation-free (after New)
// translation between clock domains; see SPEC_FULL.md in the module
// root for the full contract.
package blip
