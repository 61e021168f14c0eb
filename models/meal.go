package models

import "time"

// Meal is one logged meal. Username references users.username by value only;
// there is no foreign key, so deleting or renaming a user leaves its meals
// behind.
type Meal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Username    string    `gorm:"size:100;not null;index" json:"username"`
	Description string    `gorm:"size:200" json:"description"`
	Calories    int       `gorm:"not null" json:"calories"`
	Date        string    `gorm:"size:20;not null;index" json:"date"` // YYYY-MM-DD
}

func (Meal) TableName() string {
	return "meals"
}
