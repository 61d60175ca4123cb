package models

// RoommateMatch is one edge of the interest handshake. A row is unique per
// unordered user pair; mutual_interest flips when the second side responds.
type RoommateMatch struct {
	BaseModel
	User1ID            string  `gorm:"not null;index"`
	User2ID            string  `gorm:"not null;index"`
	CompatibilityScore float64 `gorm:"not null"`
	MutualInterest     bool    `gorm:"default:false"`

	// Relations
	User1 *User `gorm:"foreignKey:User1ID"`
	User2 *User `gorm:"foreignKey:User2ID"`
}
