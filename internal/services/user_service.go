package services

import (
	"encoding/json"
	"sort"

	"roomly_backend/internal/algorithms"
	"roomly_backend/internal/models"
	"roomly_backend/internal/repositories"
	"roomly_backend/internal/services/dto"

	"roomly_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// maxRoommateSuggestions caps the roommate discovery result.
const maxRoommateSuggestions = 20

type UserService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) error
	FindRoommates(userID string) ([]dto.RoommateCandidate, error)
	ExpressInterest(userID, targetID string) (*dto.InterestResponse, error)
	GetMatches(userID string) ([]dto.MutualMatch, error)
}

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	matchRepo repositories.MatchRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	matchRepo repositories.MatchRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		matchRepo: matchRepo,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		ID:                   user.ID,
		Email:                user.Email,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		Phone:                user.Phone,
		Bio:                  user.Bio,
		Age:                  user.Age,
		Occupation:           user.Occupation,
		BudgetMin:            user.BudgetMin,
		BudgetMax:            user.BudgetMax,
		LifestylePreferences: user.GetLifestylePreferences(),
		VerificationStatus:   string(user.VerificationStatus),
	}, nil
}

// UpdateProfile overwrites the roommate profile columns. Preferences are
// encoded on write; a nil map is stored as an empty object.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) error {
	prefs := req.LifestylePreferences
	if prefs == nil {
		prefs = map[string]string{}
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return apperrors.InternalError(err)
	}

	fields := map[string]interface{}{
		"bio":                   req.Bio,
		"age":                   req.Age,
		"occupation":            req.Occupation,
		"budget_min":            req.BudgetMin,
		"budget_max":            req.BudgetMax,
		"lifestyle_preferences": datatypes.JSON(prefsJSON),
	}

	if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// FindRoommates scores every other verified user against the acting user's
// profile and returns the compatible ones, best first.
func (s *UserServiceImpl) FindRoommates(userID string) ([]dto.RoommateCandidate, error) {
	current, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	candidates, err := s.userRepo.FindVerifiedExcept(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches := []dto.RoommateCandidate{}
	for i := range candidates {
		candidate := &candidates[i]
		percent := algorithms.CompatibilityPercent(
			algorithms.CalculateCompatibilityScore(current, candidate))
		if percent < algorithms.MinCompatibilityPercent {
			continue
		}
		matches = append(matches, dto.RoommateCandidate{
			ID:                   candidate.ID,
			FirstName:            candidate.FirstName,
			LastName:             candidate.LastName,
			Age:                  candidate.Age,
			Occupation:           candidate.Occupation,
			Bio:                  candidate.Bio,
			BudgetMin:            candidate.BudgetMin,
			BudgetMax:            candidate.BudgetMax,
			LifestylePreferences: candidate.GetLifestylePreferences(),
			VerificationStatus:   string(candidate.VerificationStatus),
			CompatibilityScore:   percent,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})

	if len(matches) > maxRoommateSuggestions {
		matches = matches[:maxRoommateSuggestions]
	}
	return matches, nil
}

// ExpressInterest implements the two-phase handshake: the first expression
// creates a pending directional edge, the reciprocal one makes it mutual.
func (s *UserServiceImpl) ExpressInterest(userID, targetID string) (*dto.InterestResponse, error) {
	if targetID == userID {
		return nil, apperrors.ErrSelfInterest
	}

	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Try the mutual flip first; it is a single conditional update, so it
	// also answers "does a row exist" atomically.
	updated, err := s.matchRepo.MarkMutual(userID, targetID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if updated {
		return &dto.InterestResponse{
			Message: "Mutual interest established!",
			Mutual:  true,
		}, nil
	}

	current, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	score := algorithms.CalculateCompatibilityScore(current, target)
	if err := s.matchRepo.Create(&models.RoommateMatch{
		User1ID:            userID,
		User2ID:            targetID,
		CompatibilityScore: score,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.InterestResponse{
		Message: "Interest expressed successfully",
		Mutual:  false,
	}, nil
}

// GetMatches returns confirmed mutual matches with the counterpart's
// identity denormalized.
func (s *UserServiceImpl) GetMatches(userID string) ([]dto.MutualMatch, error) {
	rows, err := s.matchRepo.FindMutualForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches := []dto.MutualMatch{}
	for i := range rows {
		row := &rows[i]

		counterpart := row.User2
		if row.User2ID == userID {
			counterpart = row.User1
		}
		if counterpart == nil {
			continue
		}

		matches = append(matches, dto.MutualMatch{
			MatchID:            row.ID,
			UserID:             counterpart.ID,
			FirstName:          counterpart.FirstName,
			LastName:           counterpart.LastName,
			Email:              counterpart.Email,
			Age:                counterpart.Age,
			Occupation:         counterpart.Occupation,
			Bio:                counterpart.Bio,
			CompatibilityScore: row.CompatibilityScore,
			CreatedAt:          row.CreatedAt,
		})
	}
	return matches, nil
}
