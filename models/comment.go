package models

// Comment belongs to a post. The author is optional: the public creation
// path does not identify the commenter.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text" json:"content"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	AuthorID *uint  `json:"author_id,omitempty"`
}
