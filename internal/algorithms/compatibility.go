package algorithms

import (
	"math"

	"roomly_backend/internal/models"
)

// MinCompatibilityPercent is the threshold below which two users are not
// suggested to each other.
const MinCompatibilityPercent = 60

// lifestyleKeys is the fixed set of preference keys considered for the
// agreement term. Keys missing on either side are ignored.
var lifestyleKeys = []string{"cleanliness", "noise_level", "pets", "smoking", "guests"}

// CalculateCompatibilityScore scores how compatible two roommate profiles
// are (0-1). The function is symmetric: swapping a and b yields the same
// score. Missing optional attributes contribute nothing instead of failing.
func CalculateCompatibilityScore(a, b *models.User) float64 {
	score := 0.5

	// Budget range overlap (up to 0.3)
	if a.BudgetMin != nil && a.BudgetMax != nil && b.BudgetMin != nil && b.BudgetMax != nil {
		overlap := math.Max(0, math.Min(*a.BudgetMax, *b.BudgetMax)-math.Max(*a.BudgetMin, *b.BudgetMin))
		maxRange := math.Max(*a.BudgetMax-*a.BudgetMin, *b.BudgetMax-*b.BudgetMin)
		// Zero-width ranges would divide by zero; treat as no contribution
		if maxRange > 0 {
			score += (overlap / maxRange) * 0.3
		}
	}

	// Age proximity (up to 0.1)
	if a.Age != nil && b.Age != nil {
		ageDiff := math.Abs(float64(*a.Age - *b.Age))
		ageScore := math.Max(0, 1-ageDiff/20)
		score += ageScore * 0.1
	}

	// Lifestyle preference agreement (up to 0.1)
	score += lifestyleAgreement(a.GetLifestylePreferences(), b.GetLifestylePreferences())

	return math.Min(1, math.Max(0, score))
}

// lifestyleAgreement compares the fixed key set and returns the weighted
// share of matching values (0-0.1). Keys absent on either side are skipped;
// no shared keys means no contribution.
func lifestyleAgreement(prefsA, prefsB map[string]string) float64 {
	matches := 0
	total := 0

	for _, key := range lifestyleKeys {
		if prefsA[key] != "" && prefsB[key] != "" {
			total++
			if prefsA[key] == prefsB[key] {
				matches++
			}
		}
	}

	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total) * 0.1
}

// CompatibilityPercent converts a score to the rounded percentage the API
// exposes and the match threshold is defined against.
func CompatibilityPercent(score float64) int {
	return int(math.Round(score * 100))
}
