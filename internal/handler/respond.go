package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meetyou/meetyou-backend/internal/common"
)

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrPhotoNotFound),
		errors.Is(err, common.ErrInterestNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrInterestExists):
		status = http.StatusConflict
	case errors.Is(err, common.ErrFileSave):
		status = http.StatusInternalServerError
	}
	common.ErrorResponse(c, status, err.Error(), nil)
}

// pathID parses a positive int64 path parameter; a malformed value is reported
// as a bad request and false is returned
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryID parses a positive int64 query parameter
func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
