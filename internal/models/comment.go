package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply attached to a Dweet.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null;default:''" json:"text"`
	Posted    time.Time `gorm:"not null;index" json:"posted"`
	ReplyToID uint      `gorm:"not null;index" json:"reply_to"`
	ReplyTo   *Dweet    `gorm:"foreignKey:ReplyToID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
}

// OwnerID returns the author of the comment.
func (c *Comment) OwnerID() uint { return c.AuthorID }

func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.Posted.IsZero() {
		c.Posted = time.Now().UTC()
	}
	return nil
}
