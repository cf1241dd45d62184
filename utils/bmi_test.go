package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
}

func TestCalculateBMI_RejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name           string
		weight, height float64
	}{
		{"zero weight", 0, 175},
		{"zero height", 70, 0},
		{"implausible height", 70, 20},
		{"implausible weight", 500, 175},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateBMI(tc.weight, tc.height)
			assert.Error(t, err)
		})
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class III", BMICategory(45.0))
}
