package models

import (
	"time"

	"gorm.io/gorm"
)

// ResourceKind names one of the deletable record kinds.
type ResourceKind string

const (
	KindDweet   ResourceKind = "dweet"
	KindComment ResourceKind = "comment"
)

// Dweet is a top-level post. Rows are hard-deleted; there is no soft-delete column.
type Dweet struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Code     string    `gorm:"type:text;not null" json:"code"`
	Posted   time.Time `gorm:"not null;index" json:"posted"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
}

// OwnerID returns the author of the dweet.
func (d *Dweet) OwnerID() uint { return d.AuthorID }

// BeforeCreate stamps Posted when the caller left it empty.
func (d *Dweet) BeforeCreate(_ *gorm.DB) error {
	if d.Posted.IsZero() {
		d.Posted = time.Now().UTC()
	}
	return nil
}
