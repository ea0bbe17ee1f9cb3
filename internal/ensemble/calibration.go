// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ensemble

import "sort"

// Sample is one labeled detection used for offline threshold calibration.
type Sample struct {
	Score        float64
	TruePositive bool
}

// calibrationCap bounds calibrated thresholds so a category can never be
// tuned into rejecting everything.
const calibrationCap = 0.85

// Calibrate derives an acceptance threshold for one category from labeled
// samples: high enough to sit above the strongest false positive (plus a
// margin), but no higher than the 25th percentile of true-positive scores
// would suggest, and never above the cap. Returns fallback when samples
// contain no true positives.
func Calibrate(samples []Sample, fallback float64) float64 {
	var tp, fp []float64
	for _, s := range samples {
		if s.TruePositive {
			tp = append(tp, s.Score)
		} else {
			fp = append(fp, s.Score)
		}
	}
	if len(tp) == 0 {
		return fallback
	}

	threshold := percentile(tp, 0.25)

	if len(fp) > 0 {
		maxFP := fp[0]
		for _, s := range fp[1:] {
			if s > maxFP {
				maxFP = s
			}
		}
		if above := maxFP + 0.05; above > threshold {
			threshold = above
		}
	}

	if threshold > calibrationCap {
		threshold = calibrationCap
	}
	return threshold
}

// percentile returns the p-quantile (0..1) of values by linear
// interpolation.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
