package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the "users" collection.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Username          string             `bson:"username"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"passwordHash,omitempty"`
	FirstName         string             `bson:"firstName,omitempty"`
	LastName          string             `bson:"lastName,omitempty"`
	Roles             []string           `bson:"roles"`
	Active            bool               `bson:"active"`
	LastKnownLocation *Location          `bson:"lastKnownLocation,omitempty"`
	FCMToken          string             `bson:"fcmToken,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
