package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		name          string
		height        int
		weight        int
		activityLevel int
		want          int
	}{
		{name: "sedentary", height: 180, weight: 80, activityLevel: 1, want: 2135},
		{name: "light activity", height: 180, weight: 80, activityLevel: 2, want: 2446},
		{name: "moderate activity", height: 180, weight: 80, activityLevel: 3, want: 2757},
		{name: "high activity", height: 180, weight: 80, activityLevel: 4, want: 3069},
		{name: "very high activity", height: 180, weight: 80, activityLevel: 5, want: 3380},
		{name: "short light person", height: 150, weight: 50, activityLevel: 1, want: 1550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTDEE(tt.height, tt.weight, tt.activityLevel))
		})
	}
}

func TestCalculateTDEE_MatchesFormula(t *testing.T) {
	multipliers := map[int]float64{1: 1.2, 2: 1.375, 3: 1.55, 4: 1.725, 5: 1.9}

	for height := 150; height <= 200; height += 10 {
		for weight := 50; weight <= 120; weight += 10 {
			for level := 1; level <= 5; level++ {
				base := float64(height)*6.25 + float64(weight)*9.99 - 145
				want := int(base * multipliers[level])
				assert.Equal(t, want, CalculateTDEE(height, weight, level),
					"height=%d weight=%d level=%d", height, weight, level)
			}
		}
	}
}

func TestCalculateTDEE_UnknownLevelFallsBackToSedentary(t *testing.T) {
	sedentary := CalculateTDEE(175, 70, 1)

	for _, level := range []int{0, -1, 6, 42} {
		assert.Equal(t, sedentary, CalculateTDEE(175, 70, level), "level=%d", level)
	}
}

func TestCalculateTDEE_TruncatesTowardZero(t *testing.T) {
	// base = 175*6.25 + 70*9.99 - 145 = 1648.05; *1.375 = 2266.068... -> 2266
	assert.Equal(t, 2266, CalculateTDEE(175, 70, 2))
}
