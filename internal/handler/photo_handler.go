package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meetyou/meetyou-backend/internal/common"
	"github.com/meetyou/meetyou-backend/internal/domain"
	"github.com/meetyou/meetyou-backend/internal/service"
)

// PhotoHandler handles user photo HTTP requests
type PhotoHandler struct {
	service service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(service service.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// AddPhoto handles POST /users/:user_id/photos
// @Summary Upload a photo
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param user_id path int true "user"
// @Param file formData file true "image file"
// @Param is_main formData string false "true/false"
// @Success 201 {object} common.APIResponse{data=domain.PhotoResponse}
// @Router /users/{user_id}/photos [post]
func (h *PhotoHandler) AddPhoto(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "file is required", nil)
		return
	}

	upload, err := readUpload(fh)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file", nil)
		return
	}

	result, err := h.service.AddPhoto(userID, upload, c.PostForm("is_main"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, result)
}

// AddMultiplePhotos handles POST /users/:user_id/photos/batch
// @Summary Upload multiple photos
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param user_id path int true "user"
// @Param files formData file true "image files"
// @Param is_main formData string false "true/false"
// @Success 201 {object} common.APIResponse{data=[]domain.PhotoResponse}
// @Success 206 {object} common.APIResponse{data=[]domain.PhotoResponse}
// @Router /users/{user_id}/photos/batch [post]
func (h *PhotoHandler) AddMultiplePhotos(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	uploads := make([]*domain.PhotoUpload, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		upload, readErr := readUpload(fh)
		if readErr != nil {
			// an unreadable part joins the batch as an empty upload so the
			// service records it as failed instead of dropping it silently
			upload = &domain.PhotoUpload{FileName: fh.Filename}
		}
		uploads = append(uploads, upload)
	}

	result, err := h.service.AddMultiplePhotos(userID, uploads, c.PostForm("is_main"))
	if err != nil {
		var partial *common.PartialUploadError
		if errors.As(err, &partial) {
			common.PartialResponse(c, result, "some files could not be saved", partial.FailedFiles)
			return
		}
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, result)
}

// GetAllUserPhotos handles GET /users/:user_id/photos
// @Summary List a user's photos
// @Tags photos
// @Produce json
// @Param user_id path int true "user"
// @Success 200 {object} common.APIResponse{data=[]domain.PhotoResponse}
// @Router /users/{user_id}/photos [get]
func (h *PhotoHandler) GetAllUserPhotos(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.service.GetAllUserPhotos(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Total: int64(len(result))})
}

// GetPhotoByID handles GET /users/:user_id/photos/:photo_id
// @Summary Get a single photo
// @Tags photos
// @Produce json
// @Param user_id path int true "user"
// @Param photo_id path int true "photo"
// @Success 200 {object} common.APIResponse{data=domain.PhotoResponse}
// @Router /users/{user_id}/photos/{photo_id} [get]
func (h *PhotoHandler) GetPhotoByID(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	result, err := h.service.GetPhotoByID(userID, photoID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// UpdatePhoto handles PUT /users/:user_id/photos/:photo_id
// @Summary Update a photo
// @Tags photos
// @Accept json
// @Produce json
// @Param user_id path int true "user"
// @Param photo_id path int true "photo"
// @Param request body domain.UpdatePhotoRequest true "fields to update"
// @Success 200 {object} common.APIResponse{data=domain.PhotoResponse}
// @Router /users/{user_id}/photos/{photo_id} [put]
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	var req domain.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.service.UpdatePhoto(userID, photoID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// DeletePhoto handles DELETE /users/:user_id/photos/:photo_id
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Param user_id path int true "user"
// @Param photo_id path int true "photo"
// @Success 200 {object} common.APIResponse
// @Router /users/{user_id}/photos/{photo_id} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(userID, photoID); err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// SetPhotoAsMain handles PUT /users/:user_id/photos/:photo_id/main
// @Summary Promote a photo to main
// @Tags photos
// @Produce json
// @Param user_id path int true "user"
// @Param photo_id path int true "photo"
// @Success 200 {object} common.APIResponse{data=domain.PhotoResponse}
// @Router /users/{user_id}/photos/{photo_id}/main [put]
func (h *PhotoHandler) SetPhotoAsMain(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photo_id")
	if !ok {
		return
	}

	result, err := h.service.SetPhotoAsMain(userID, photoID)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// readUpload copies a multipart file into a PhotoUpload
func readUpload(fh *multipart.FileHeader) (*domain.PhotoUpload, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &domain.PhotoUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
