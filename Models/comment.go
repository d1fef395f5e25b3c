package Models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	TaskID   uint   `json:"task_id" gorm:"not null;index"`
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	ParentID *uint  `json:"parent_id"`
	Content  string `json:"content" gorm:"type:text;not null"`

	Author   User             `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Mentions []CommentMention `json:"mentions,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

// CommentMention records who a comment called out. The mentioned user's
// read state lives on the Notification row the mention creates.
type CommentMention struct {
	gorm.Model
	CommentID uint `json:"comment_id" gorm:"not null;index:idx_comment_mention,unique"`
	UserID    uint `json:"user_id" gorm:"not null;index:idx_comment_mention,unique"`
}
