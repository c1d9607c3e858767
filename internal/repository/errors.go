// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"dwitter/internal/models"

	"gorm.io/gorm"
)

// notFoundOr maps gorm.ErrRecordNotFound to a NOT_FOUND AppError and passes other errors through.
func notFoundOr(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
