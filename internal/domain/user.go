package domain

import (
	"context"
	"strings"
)

const (
	CollectionUser = "users"
)

// User is the slice of the profile document this service reads for display
// snapshots. The profile service owns the collection.
type User struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Photo     string `json:"photo,omitempty"`
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AuthUser is the acting user resolved by the auth middleware.
type AuthUser struct {
	UserId string
}

type UserRepo interface {
	GetById(ctx context.Context, userId string) (User, error)
}
