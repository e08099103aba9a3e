package domain

import "time"

// Photo represents a user photo (photos table).
// At most one photo per user carries is_main; the services enforce this by
// clearing existing main flags before setting a new one.
type Photo struct {
	UploadDate time.Time `gorm:"column:upload_date" json:"upload_date"`
	PhotoURL   string    `gorm:"column:photo_url;size:255;not null" json:"photo_url"`
	UserID     int64     `gorm:"column:user_id;index;not null" json:"user_id"`
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IsMain     bool      `gorm:"column:is_main;default:false" json:"is_main"`
}

func (Photo) TableName() string {
	return "photos"
}

// PhotoUpload carries an uploaded file's name, declared content type and
// bytes, decoupled from the HTTP multipart layer
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UpdatePhotoRequest carries a partial photo update; nil fields are left
// unchanged
type UpdatePhotoRequest struct {
	PhotoURL   *string `json:"photo_url"`
	IsMain     *string `json:"is_main"`
	UploadDate *string `json:"upload_date"`
}

// PhotoResponse represents a photo in API responses
type PhotoResponse struct {
	UploadDate string `json:"upload_date"`
	PhotoURL   string `json:"photo_url"`
	UserID     int64  `json:"user_id"`
	ID         int64  `json:"id"`
	IsMain     bool   `json:"is_main"`
}

// ToResponse converts Photo to PhotoResponse
func (p *Photo) ToResponse() *PhotoResponse {
	return &PhotoResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		PhotoURL:   p.PhotoURL,
		IsMain:     p.IsMain,
		UploadDate: p.UploadDate.Format("2006-01-02"),
	}
}
