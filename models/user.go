package models

import "time"

// User is a registered profile. TDEE is derived from height, weight and
// activity level and recomputed whenever any of those change.
//
// Username uniqueness is enforced by the registration path, not the schema:
// the update path can rename a user onto an existing username unchecked.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
	Username      string    `gorm:"index;not null" json:"username"`
	Height        int       `gorm:"not null" json:"height"`         // cm
	Weight        int       `gorm:"not null" json:"weight"`         // kg
	ActivityLevel int       `gorm:"not null" json:"activity_level"` // 1..5
	TDEE          int       `gorm:"column:tdee" json:"tdee"`
}

func (User) TableName() string {
	return "users"
}
