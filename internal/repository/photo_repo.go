package repository

import (
	"github.com/meetyou/meetyou-backend/internal/domain"
	"gorm.io/gorm"
)

// PhotoRepository photo data access interface.
// The *ClearingMain variants run clear-then-set inside one transaction so a
// single operation cannot leave two main photos behind; concurrent operations
// still race at the store's default isolation level.
type PhotoRepository interface {
	Create(photo *domain.Photo) error
	CreateClearingMain(photo *domain.Photo) error
	CreateBatch(userID int64, photos []*domain.Photo, resetMain bool) error
	FindByUserID(userID int64) ([]*domain.Photo, error)
	FindByIDAndUserID(id, userID int64) (*domain.Photo, error)
	Save(photo *domain.Photo) error
	SaveClearingMain(photo *domain.Photo) error
	Delete(photo *domain.Photo) error
	ClearMain(userID int64) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// Create creates a new photo record
func (r *photoRepository) Create(photo *domain.Photo) error {
	return r.db.Create(photo).Error
}

// CreateClearingMain clears the user's main flags and creates the photo in one
// transaction
func (r *photoRepository) CreateClearingMain(photo *domain.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := clearMain(tx, photo.UserID, 0); err != nil {
			return err
		}
		return tx.Create(photo).Error
	})
}

// CreateBatch inserts the photos in one transaction, clearing the user's
// existing main flags first when resetMain is set
func (r *photoRepository) CreateBatch(userID int64, photos []*domain.Photo, resetMain bool) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if resetMain {
			if err := clearMain(tx, userID, 0); err != nil {
				return err
			}
		}
		return tx.Create(photos).Error
	})
}

// FindByUserID returns all photos of a user, newest first
func (r *photoRepository) FindByUserID(userID int64) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	err := r.db.Where("user_id = ?", userID).
		Order("upload_date DESC, id DESC").
		Find(&photos).Error
	return photos, err
}

// FindByIDAndUserID finds a photo by ID scoped to its owner
func (r *photoRepository) FindByIDAndUserID(id, userID int64) (*domain.Photo, error) {
	var photo domain.Photo
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// Save persists changes to an existing photo
func (r *photoRepository) Save(photo *domain.Photo) error {
	return r.db.Save(photo).Error
}

// SaveClearingMain clears main flags on the user's other photos and saves this
// one in a single transaction
func (r *photoRepository) SaveClearingMain(photo *domain.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := clearMain(tx, photo.UserID, photo.ID); err != nil {
			return err
		}
		return tx.Save(photo).Error
	})
}

// Delete removes a photo record
func (r *photoRepository) Delete(photo *domain.Photo) error {
	return r.db.Delete(photo).Error
}

// ClearMain drops the main flag from all of the user's photos
func (r *photoRepository) ClearMain(userID int64) error {
	return clearMain(r.db, userID, 0)
}

func clearMain(tx *gorm.DB, userID, excludeID int64) error {
	q := tx.Model(&domain.Photo{}).
		Where("user_id = ? AND is_main = ?", userID, true)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q.Update("is_main", false).Error
}
