package models

type RoomApplication struct {
	BaseModel
	// The unique index closes the check-then-insert race: a concurrent
	// duplicate application fails on insert instead of slipping through.
	RoomID      string `gorm:"not null;uniqueIndex:idx_room_applicant"`
	ApplicantID string `gorm:"not null;uniqueIndex:idx_room_applicant"`
	Message     string
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`

	// Relations
	Room      *Room `gorm:"foreignKey:RoomID"`
	Applicant *User `gorm:"foreignKey:ApplicantID"`
}
