package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role enumerates the access levels a user record can carry. A record with no
// role field is a plain user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// User is the domain model for marketplace accounts. Records are created on
// first sign-in; authentication is delegated to the token issuer, so there is
// no credential material here.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsModerator reports whether the record carries the moderator role.
func (u *User) IsModerator() bool {
	return u != nil && u.Role == RoleModerator
}
