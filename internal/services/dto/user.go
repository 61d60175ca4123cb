package dto

import "time"

// UpdateProfileRequest overwrites the roommate profile columns like the
// profile form does: every field is submitted on each save.
type UpdateProfileRequest struct {
	Bio                  string            `json:"bio" validate:"omitempty,max=2000"`
	Age                  *int              `json:"age" validate:"omitempty,min=16,max=120"`
	Occupation           string            `json:"occupation" validate:"omitempty,max=100"`
	BudgetMin            *float64          `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax            *float64          `json:"budget_max" validate:"omitempty,min=0,gtefield=BudgetMin"`
	LifestylePreferences map[string]string `json:"lifestyle_preferences"`
}

// ProfileResponse - the acting user's own profile
type ProfileResponse struct {
	ID                   string            `json:"id"`
	Email                string            `json:"email"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Phone                string            `json:"phone,omitempty"`
	Bio                  string            `json:"bio,omitempty"`
	Age                  *int              `json:"age,omitempty"`
	Occupation           string            `json:"occupation,omitempty"`
	BudgetMin            *float64          `json:"budget_min,omitempty"`
	BudgetMax            *float64          `json:"budget_max,omitempty"`
	LifestylePreferences map[string]string `json:"lifestyle_preferences"`
	VerificationStatus   string            `json:"verification_status"`
}

// RoommateCandidate - one scored roommate suggestion
type RoommateCandidate struct {
	ID                   string            `json:"id"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Age                  *int              `json:"age,omitempty"`
	Occupation           string            `json:"occupation,omitempty"`
	Bio                  string            `json:"bio,omitempty"`
	BudgetMin            *float64          `json:"budget_min,omitempty"`
	BudgetMax            *float64          `json:"budget_max,omitempty"`
	LifestylePreferences map[string]string `json:"lifestyle_preferences"`
	VerificationStatus   string            `json:"verification_status"`
	CompatibilityScore   int               `json:"compatibility_score"`
}

// InterestRequest - express interest in another user
type InterestRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// InterestResponse reports whether the handshake became mutual.
type InterestResponse struct {
	Message string `json:"message"`
	Mutual  bool   `json:"mutual"`
}

// MutualMatch - a confirmed match with the counterpart's identity
type MutualMatch struct {
	MatchID            string    `json:"match_id"`
	UserID             string    `json:"user_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	Age                *int      `json:"age,omitempty"`
	Occupation         string    `json:"occupation,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	CompatibilityScore float64   `json:"compatibility_score"`
	CreatedAt          time.Time `json:"created_at"`
}
