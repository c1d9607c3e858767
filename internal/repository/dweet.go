package repository

import (
	"context"

	"dwitter/internal/models"

	"gorm.io/gorm"
)

// DweetRepository defines the interface for dweet data operations
type DweetRepository interface {
	Create(ctx context.Context, dweet *models.Dweet) error
	GetByID(ctx context.Context, id uint) (*models.Dweet, error)
	List(ctx context.Context, limit, offset int) ([]*models.Dweet, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type dweetRepository struct {
	db *gorm.DB
}

// NewDweetRepository creates a new dweet repository
func NewDweetRepository(db *gorm.DB) DweetRepository {
	return &dweetRepository{db: db}
}

const dweetColumns = "dweets.*, (SELECT COUNT(*) FROM comments WHERE comments.reply_to_id = dweets.id) AS comments_count"

func (r *dweetRepository) Create(ctx context.Context, dweet *models.Dweet) error {
	return r.db.WithContext(ctx).Omit("Author").Create(dweet).Error
}

func (r *dweetRepository) GetByID(ctx context.Context, id uint) (*models.Dweet, error) {
	var dweet models.Dweet
	err := r.db.WithContext(ctx).
		Select(dweetColumns).
		Preload("Author").
		First(&dweet, id).Error
	if err != nil {
		return nil, notFoundOr(err, "Dweet", id)
	}
	return &dweet, nil
}

func (r *dweetRepository) List(ctx context.Context, limit, offset int) ([]*models.Dweet, error) {
	var dweets []*models.Dweet
	err := r.db.WithContext(ctx).
		Select(dweetColumns).
		Preload("Author").
		Order("posted DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&dweets).Error
	return dweets, err
}

func (r *dweetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Dweet{}).Count(&count).Error
	return count, err
}

// Delete removes the dweet and its comments in one transaction. A dweet that
// no longer exists yields NOT_FOUND, so of two racing deletes only one succeeds.
func (r *dweetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reply_to_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Dweet{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Dweet", id)
		}
		return nil
	})
}
