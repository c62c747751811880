// Package model contains the persistence representations of the domain
// entities, tagged for BSON document storage. Each model maps one-to-one to a
// stored document and knows how to convert to and from its pure domain entity.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/domain/entity"
)

// UserModel is the document stored in the "users" collection.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Roles        []string           `bson:"roles"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// ToDomain maps the stored document back to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(m.Roles),
		CreatedAt:    m.CreatedAt,
	}
}

// UserFromDomain maps a domain entity to its document representation.
// An unset or malformed entity ID maps to the zero ObjectID so the store
// assigns one on insert.
func UserFromDomain(user *entity.User) *UserModel {
	oid, _ := primitive.ObjectIDFromHex(user.ID)

	return &UserModel{
		ID:           oid,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Roles:        user.Roles.ToStrings(),
		CreatedAt:    user.CreatedAt,
	}
}
