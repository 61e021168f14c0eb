package utils

// activityMultipliers maps activity level (1 = sedentary .. 5 = very active)
// to the usual TDEE multipliers.
var activityMultipliers = map[int]float64{
	1: 1.2,
	2: 1.375,
	3: 1.55,
	4: 1.725,
	5: 1.9,
}

// CalculateTDEE estimates total daily energy expenditure from height (cm),
// weight (kg) and activity level. Simplified Mifflin-St Jeor with the age
// term fixed at 30 and no sex term, so this is a rough placeholder estimate.
// Unknown activity levels fall back to the sedentary multiplier rather than
// erroring.
func CalculateTDEE(heightCm, weightKg, activityLevel int) int {
	base := float64(heightCm)*6.25 + float64(weightKg)*9.99 - (5 * 30) + 5

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.2
	}
	return int(base * multiplier)
}
