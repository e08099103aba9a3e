package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/repository"
	"github.com/meetyou/meetyou-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	isMainTrue  = "true"
	isMainFalse = "false"
)

// Image extensions accepted for upload
var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// PhotoService business logic for user photos
type PhotoService interface {
	AddPhoto(userID int64, file *domain.PhotoUpload, isMain string) (*domain.PhotoResponse, error)
	AddMultiplePhotos(userID int64, files []*domain.PhotoUpload, isMain string) ([]*domain.PhotoResponse, error)
	GetAllUserPhotos(userID int64) ([]*domain.PhotoResponse, error)
	GetPhotoByID(userID, photoID int64) (*domain.PhotoResponse, error)
	UpdatePhoto(userID, photoID int64, req *domain.UpdatePhotoRequest) (*domain.PhotoResponse, error)
	DeletePhoto(userID, photoID int64) error
	SetPhotoAsMain(userID, photoID int64) (*domain.PhotoResponse, error)
}

type photoService struct {
	repo      repository.PhotoRepository
	userRepo  repository.UserRepository
	uploadDir string
}

// NewPhotoService creates a new PhotoService storing files under uploadDir
func NewPhotoService(repo repository.PhotoRepository, userRepo repository.UserRepository, uploadDir string) PhotoService {
	return &photoService{
		repo:      repo,
		userRepo:  userRepo,
		uploadDir: uploadDir,
	}
}

// AddPhoto stores the uploaded file on disk and creates a photo record. When
// isMain is "true" the user's previous main photo loses its flag first.
func (s *photoService) AddPhoto(userID int64, file *domain.PhotoUpload, isMain string) (*domain.PhotoResponse, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateUpload(file); err != nil {
		return nil, err
	}
	if err := validateIsMain(isMain); err != nil {
		return nil, err
	}
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	photoURL, err := s.saveFile(file)
	if err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		UserID:     userID,
		PhotoURL:   photoURL,
		IsMain:     isMain == isMainTrue,
		UploadDate: time.Now(),
	}

	if photo.IsMain {
		err = s.repo.CreateClearingMain(photo)
	} else {
		err = s.repo.Create(photo)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("photo %d added for user %d", photo.ID, userID)
	return photo.ToResponse(), nil
}

// AddMultiplePhotos saves each file independently; invalid files and write
// failures are collected instead of aborting the batch. When isMain is "true"
// only the first successfully processed file becomes main.
func (s *photoService) AddMultiplePhotos(userID int64, files []*domain.PhotoUpload, isMain string) ([]*domain.PhotoResponse, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []*domain.PhotoResponse{}, nil
	}
	if err := validateIsMain(isMain); err != nil {
		return nil, err
	}
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	wantMain := isMain == isMainTrue
	var photos []*domain.Photo
	var failed []string

	for _, file := range files {
		photo, err := s.processUpload(userID, file, wantMain && len(photos) == 0)
		if err != nil {
			name := ""
			if file != nil {
				name = file.FileName
			}
			logger.Error("failed to process file %q for user %d: %v", name, userID, err)
			failed = append(failed, name)
			continue
		}
		photos = append(photos, photo)
	}

	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: failed to save all files: %s",
			common.ErrInvalidInput, strings.Join(failed, ", "))
	}

	if err := s.repo.CreateBatch(userID, photos, wantMain); err != nil {
		return nil, err
	}

	responses := make([]*domain.PhotoResponse, len(photos))
	for i, p := range photos {
		responses[i] = p.ToResponse()
	}

	if len(failed) > 0 {
		return responses, &common.PartialUploadError{
			FailedFiles: failed,
			SavedCount:  len(photos),
		}
	}
	return responses, nil
}

// GetAllUserPhotos returns all photos of a user
func (s *photoService) GetAllUserPhotos(userID int64) ([]*domain.PhotoResponse, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	photos, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.PhotoResponse, len(photos))
	for i, p := range photos {
		responses[i] = p.ToResponse()
	}
	return responses, nil
}

// GetPhotoByID returns a single photo owned by the user
func (s *photoService) GetPhotoByID(userID, photoID int64) (*domain.PhotoResponse, error) {
	photo, err := s.findPhoto(userID, photoID)
	if err != nil {
		return nil, err
	}
	return photo.ToResponse(), nil
}

// UpdatePhoto applies the non-nil fields of req onto an existing photo.
// Promoting the photo to main clears the user's other main photos first.
func (s *photoService) UpdatePhoto(userID, photoID int64, req *domain.UpdatePhotoRequest) (*domain.PhotoResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: photo details cannot be empty", common.ErrInvalidInput)
	}
	if req.PhotoURL == nil || strings.TrimSpace(*req.PhotoURL) == "" {
		return nil, fmt.Errorf("%w: photo URL cannot be empty", common.ErrInvalidInput)
	}
	if req.IsMain != nil {
		if err := validateIsMain(*req.IsMain); err != nil {
			return nil, err
		}
	}

	photo, err := s.findPhoto(userID, photoID)
	if err != nil {
		return nil, err
	}

	wasMain := photo.IsMain

	photo.PhotoURL = *req.PhotoURL
	if req.IsMain != nil {
		photo.IsMain = *req.IsMain == isMainTrue
	}
	if req.UploadDate != nil && strings.TrimSpace(*req.UploadDate) != "" {
		date, parseErr := time.Parse("2006-01-02", *req.UploadDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: upload date must be YYYY-MM-DD", common.ErrInvalidInput)
		}
		photo.UploadDate = date
	}

	if photo.IsMain && !wasMain {
		err = s.repo.SaveClearingMain(photo)
	} else {
		err = s.repo.Save(photo)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("photo %d updated for user %d", photoID, userID)
	return photo.ToResponse(), nil
}

// DeletePhoto removes the photo record and its backing file. A missing or
// undeletable file is logged and does not fail the operation.
func (s *photoService) DeletePhoto(userID, photoID int64) error {
	photo, err := s.findPhoto(userID, photoID)
	if err != nil {
		return err
	}

	s.deleteFile(photo.PhotoURL)

	if err := s.repo.Delete(photo); err != nil {
		return err
	}

	logger.Info("photo %d deleted for user %d", photoID, userID)
	return nil
}

// SetPhotoAsMain promotes the photo to the user's main photo, clearing any
// previous main flag
func (s *photoService) SetPhotoAsMain(userID, photoID int64) (*domain.PhotoResponse, error) {
	photo, err := s.findPhoto(userID, photoID)
	if err != nil {
		return nil, err
	}

	photo.IsMain = true
	if err := s.repo.SaveClearingMain(photo); err != nil {
		return nil, err
	}

	logger.Info("photo %d set as main for user %d", photoID, userID)
	return photo.ToResponse(), nil
}

// processUpload validates a single file and writes it to disk
func (s *photoService) processUpload(userID int64, file *domain.PhotoUpload, main bool) (*domain.Photo, error) {
	if err := validateUpload(file); err != nil {
		return nil, err
	}
	photoURL, err := s.saveFile(file)
	if err != nil {
		return nil, err
	}
	return &domain.Photo{
		UserID:     userID,
		PhotoURL:   photoURL,
		IsMain:     main,
		UploadDate: time.Now(),
	}, nil
}

// saveFile writes the upload under the storage root with a uuid-derived name
// and returns the stored path. The resolved target must stay inside the root.
func (s *photoService) saveFile(file *domain.PhotoUpload) (string, error) {
	ext, err := photoExtension(file.FileName)
	if err != nil {
		return "", err
	}

	root, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrFileSave, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		logger.Error("failed to create upload dir %s: %v", root, err)
		return "", fmt.Errorf("%w: %v", common.ErrFileSave, err)
	}

	fileName := uuid.New().String() + ext
	target := filepath.Join(root, fileName)
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: invalid file path", common.ErrInvalidInput)
	}

	if err := os.WriteFile(target, file.Data, 0o644); err != nil {
		logger.Error("failed to write file %s: %v", target, err)
		return "", fmt.Errorf("%w: %v", common.ErrFileSave, err)
	}
	return target, nil
}

// deleteFile removes a stored photo file, logging instead of failing
func (s *photoService) deleteFile(photoURL string) {
	if photoURL == "" {
		return
	}
	if err := os.Remove(photoURL); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("photo file %s not found in storage", photoURL)
		} else {
			logger.Error("failed to delete photo file %s: %v", photoURL, err)
		}
	}
}

func (s *photoService) findPhoto(userID, photoID int64) (*domain.Photo, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if photoID <= 0 {
		return nil, fmt.Errorf("%w: photo id must be positive", common.ErrInvalidInput)
	}

	photo, err := s.repo.FindByIDAndUserID(photoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: photo %d for user %d", common.ErrPhotoNotFound, photoID, userID)
		}
		return nil, err
	}
	return photo, nil
}

func (s *photoService) requireUser(userID int64) error {
	exists, err := s.userRepo.ExistsByID(userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: user with id %d", common.ErrUserNotFound, userID)
	}
	return nil
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id must be positive", common.ErrInvalidInput)
	}
	return nil
}

func validateUpload(file *domain.PhotoUpload) error {
	if file == nil || len(file.Data) == 0 {
		return fmt.Errorf("%w: file cannot be empty", common.ErrInvalidInput)
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return fmt.Errorf("%w: file must be an image", common.ErrInvalidInput)
	}
	return nil
}

func validateIsMain(isMain string) error {
	if isMain != "" && isMain != isMainTrue && isMain != isMainFalse {
		return fmt.Errorf("%w: isMain must be 'true' or 'false'", common.ErrInvalidInput)
	}
	return nil
}

// photoExtension validates the original file name against the image allow-list
// and returns its lower-cased extension
func photoExtension(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return "", fmt.Errorf("%w: file must have an extension", common.ErrInvalidInput)
	}
	if !allowedPhotoExts[ext] {
		return "", fmt.Errorf("%w: file extension %s is not allowed", common.ErrInvalidInput, ext)
	}
	return ext, nil
}
