package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserDTO is the authenticated principal stored in request context.
type UserDTO struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Roles    []string           `json:"roles"`
}

func (u *UserDTO) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type UserResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Roles     []string `json:"roles"`
	Active    bool     `json:"active"`
}

// UserSummary is the reporter projection embedded in report responses.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}
