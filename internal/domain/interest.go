package domain

// Interest represents an interest tag (interests table).
// Uniqueness of interest_type is case-insensitive, enforced through the
// repository existence checks rather than a collated unique index.
type Interest struct {
	InterestType string `gorm:"column:interest_type;size:100;not null" json:"interest_type"`
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
}

func (Interest) TableName() string {
	return "interests"
}

// AddInterestRequest attaches an interest to a user
type AddInterestRequest struct {
	InterestType string `json:"interest_type" binding:"required"`
}

// InterestResponse represents an interest in API responses
type InterestResponse struct {
	InterestType string `json:"interest_type"`
	ID           int64  `json:"id"`
}

// ToResponse converts Interest to InterestResponse
func (i *Interest) ToResponse() *InterestResponse {
	return &InterestResponse{
		ID:           i.ID,
		InterestType: i.InterestType,
	}
}
