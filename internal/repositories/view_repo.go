package repositories

import (
	"errors"
	"time"

	"catalogview/internal/models"
)

// ErrViewNotFound is returned for unknown or expired view IDs.
var ErrViewNotFound = errors.New("view not found")

// ViewRepository defines the interface for view session storage.
type ViewRepository interface {
	Create(view *models.View) error
	GetByID(id string) (*models.View, error)
	// Update runs fn on the stored view under the repository lock.
	Update(id string, fn func(view *models.View) error) (*models.View, error)
	Delete(id string) error
	// DeleteIdle removes views not seen since the cutoff and returns how many were removed.
	DeleteIdle(cutoff time.Time) int
}
