// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrateSeparableClasses(t *testing.T) {
	samples := []Sample{
		{Score: 0.90, TruePositive: true},
		{Score: 0.80, TruePositive: true},
		{Score: 0.70, TruePositive: true},
		{Score: 0.60, TruePositive: true},
		{Score: 0.30, TruePositive: false},
		{Score: 0.40, TruePositive: false},
	}

	threshold := Calibrate(samples, 0.55)

	// p25 of TP scores [0.60 0.70 0.80 0.90] = 0.675; max FP + 0.05 = 0.45.
	assert.InDelta(t, 0.675, threshold, 1e-9)
}

func TestCalibrateFalsePositivesPushUp(t *testing.T) {
	samples := []Sample{
		{Score: 0.90, TruePositive: true},
		{Score: 0.85, TruePositive: true},
		{Score: 0.88, TruePositive: true},
		{Score: 0.95, TruePositive: true},
		{Score: 0.84, TruePositive: false},
	}

	// max FP 0.84 + 0.05 = 0.89 exceeds p25(TP), but the cap holds at 0.85.
	threshold := Calibrate(samples, 0.55)
	assert.InDelta(t, 0.85, threshold, 1e-9)
}

func TestCalibrateNoTruePositivesUsesFallback(t *testing.T) {
	samples := []Sample{
		{Score: 0.30, TruePositive: false},
		{Score: 0.60, TruePositive: false},
	}
	assert.Equal(t, 0.55, Calibrate(samples, 0.55))
	assert.Equal(t, 0.55, Calibrate(nil, 0.55))
}

func TestCalibrateSingleTruePositive(t *testing.T) {
	threshold := Calibrate([]Sample{{Score: 0.72, TruePositive: true}}, 0.55)
	assert.InDelta(t, 0.72, threshold, 1e-9)
}
