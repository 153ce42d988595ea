package models

import "time"

// Post is a blog entry owned by a user. OwnerID is a plain foreign key;
// the owner record is resolved with an explicit lookup, not an association.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
}
