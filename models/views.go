package models

import "time"

// UserOut is the public view of a user. The password hash is excluded.
type UserOut struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// PostOut is a post together with its owner's public view.
type PostOut struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Owner     UserOut   `json:"owner"`
}

// CommentOut is the response shape for a comment.
type CommentOut struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	PostID  uint   `json:"post_id"`
}

func (u *User) Out() UserOut {
	return UserOut{ID: u.ID, Email: u.Email}
}

func (p *Post) Out(owner UserOut) PostOut {
	return PostOut{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Owner:     owner,
	}
}

func (c *Comment) Out() CommentOut {
	return CommentOut{ID: c.ID, Content: c.Content, PostID: c.PostID}
}
