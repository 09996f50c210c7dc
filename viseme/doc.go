// SPDX-License-Identifier: EPL-2.0

// Package viseme drives frame-based viseme prediction over a waveform.
//
// A prediction engine consumes fixed size frames of normalized samples and
// fills a vector of Count scores, one per mouth shape class (sil, PP, FF, ...).
// Process walks the frames of a waveform.Waveform and reports each vector;
// ArgMax picks the winning class.
//
// EnergyEngine is a small built-in engine based on frame energy and zero
// crossing rate. Any other predictor can be plugged in through Engine.
package viseme
