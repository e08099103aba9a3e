package domain

import "time"

// User domain model (users table)
type User struct {
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Name      string     `gorm:"column:name;size:100;not null" json:"name"`
	Email     string     `gorm:"column:email;size:128;uniqueIndex;not null" json:"email"`
	Bio       string     `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Interests []Interest `gorm:"many2many:user_interests" json:"interests"`
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse represents a user in API responses
type UserResponse struct {
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Bio       string             `json:"bio,omitempty"`
	CreatedAt string             `json:"created_at"`
	Interests []InterestResponse `json:"interests"`
	ID        int64              `json:"id"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	interests := make([]InterestResponse, len(u.Interests))
	for i, in := range u.Interests {
		interests[i] = *in.ToResponse()
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Interests: interests,
		CreatedAt: u.CreatedAt.Format("2006-01-02"),
	}
}
