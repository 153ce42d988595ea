package models

// User represents a registered account in the system.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`

	// Password holds the bcrypt hash. It is NEVER serialized in responses.
	Password string `gorm:"not null" json:"-"`
}
