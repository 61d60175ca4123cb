package algorithms

import (
	"encoding/json"
	"testing"

	"roomly_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func userWithPrefs(t *testing.T, prefs map[string]string) *models.User {
	u := &models.User{}
	if prefs != nil {
		raw, err := json.Marshal(prefs)
		assert.NoError(t, err)
		u.LifestylePreferences = raw
	}
	return u
}

func TestScoreWithNoSharedAttributes(t *testing.T) {
	a := &models.User{}
	b := &models.User{}

	score := CalculateCompatibilityScore(a, b)
	assert.Equal(t, 0.5, score, "empty profiles should score exactly the base")
}

func TestScoreIsSymmetric(t *testing.T) {
	a := userWithPrefs(t, map[string]string{"pets": "yes", "smoking": "no"})
	a.Age = intPtr(24)
	a.BudgetMin = floatPtr(500)
	a.BudgetMax = floatPtr(900)

	b := userWithPrefs(t, map[string]string{"pets": "no", "smoking": "no", "guests": "often"})
	b.Age = intPtr(31)
	b.BudgetMin = floatPtr(700)
	b.BudgetMax = floatPtr(1200)

	assert.Equal(t, CalculateCompatibilityScore(a, b), CalculateCompatibilityScore(b, a))
}

func TestScoreStaysInRange(t *testing.T) {
	a := userWithPrefs(t, map[string]string{
		"cleanliness": "high", "noise_level": "low", "pets": "yes", "smoking": "no", "guests": "rarely",
	})
	a.Age = intPtr(25)
	a.BudgetMin = floatPtr(600)
	a.BudgetMax = floatPtr(1000)

	// Identical profile maxes out every term
	b := userWithPrefs(t, map[string]string{
		"cleanliness": "high", "noise_level": "low", "pets": "yes", "smoking": "no", "guests": "rarely",
	})
	b.Age = intPtr(25)
	b.BudgetMin = floatPtr(600)
	b.BudgetMax = floatPtr(1000)

	score := CalculateCompatibilityScore(a, b)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestIdenticalBudgetsContributeFullWeight(t *testing.T) {
	a := &models.User{BudgetMin: floatPtr(800), BudgetMax: floatPtr(1200)}
	b := &models.User{BudgetMin: floatPtr(800), BudgetMax: floatPtr(1200)}

	score := CalculateCompatibilityScore(a, b)
	assert.InDelta(t, 0.8, score, 1e-9, "identical ranges overlap fully: 0.5 + 0.3")
}

func TestZeroWidthBudgetRangeIsSkipped(t *testing.T) {
	a := &models.User{BudgetMin: floatPtr(1000), BudgetMax: floatPtr(1000)}
	b := &models.User{BudgetMin: floatPtr(1000), BudgetMax: floatPtr(1000)}

	score := CalculateCompatibilityScore(a, b)
	assert.Equal(t, 0.5, score, "degenerate ranges must not divide by zero")
}

func TestBudgetSkippedWhenOneSideIncomplete(t *testing.T) {
	a := &models.User{BudgetMin: floatPtr(500)}
	b := &models.User{BudgetMin: floatPtr(500), BudgetMax: floatPtr(900)}

	assert.Equal(t, 0.5, CalculateCompatibilityScore(a, b))
}

func TestAgeTerm(t *testing.T) {
	a := &models.User{Age: intPtr(25)}
	b := &models.User{Age: intPtr(25)}
	assert.InDelta(t, 0.6, CalculateCompatibilityScore(a, b), 1e-9, "same age gives the full 0.1")

	c := &models.User{Age: intPtr(25)}
	d := &models.User{Age: intPtr(55)}
	assert.Equal(t, 0.5, CalculateCompatibilityScore(c, d), "30 year gap zeroes the term")

	e := &models.User{Age: intPtr(25)}
	f := &models.User{Age: intPtr(35)}
	assert.InDelta(t, 0.55, CalculateCompatibilityScore(e, f), 1e-9, "10 year gap gives half the term")
}

func TestLifestyleOnlySharedKeysCount(t *testing.T) {
	a := userWithPrefs(t, map[string]string{"pets": "yes", "smoking": "no", "guests": "often"})
	b := userWithPrefs(t, map[string]string{"pets": "yes", "smoking": "yes"})

	// Shared keys: pets (match), smoking (mismatch). guests is ignored.
	score := CalculateCompatibilityScore(a, b)
	assert.InDelta(t, 0.55, score, 1e-9)
}

func TestCompatibilityPercentRounds(t *testing.T) {
	assert.Equal(t, 60, CompatibilityPercent(0.595))
	assert.Equal(t, 59, CompatibilityPercent(0.594))
	assert.Equal(t, 100, CompatibilityPercent(1.0))
}
