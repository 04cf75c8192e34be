package models

import "time"

// User is a registered account. Password holds the bcrypt digest and is
// never serialized outward.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string `json:"-"`
	CreatedAt time.Time
}
