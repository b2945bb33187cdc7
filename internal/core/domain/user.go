package domain

import "time"

// User is an account holder. Credits is only changed through ledger
// transactions and never drops below zero once a command commits.
type User struct {
	ID         string    `json:"id"`
	Credits    int64     `json:"credits"`
	Reputation int       `json:"reputation"`
	Streak     int       `json:"streak"`
	Country    string    `json:"country"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Profile carries the onboarding fields supplied when a user is provisioned
// or re-onboarded. It never carries a balance.
type Profile struct {
	UserID     string `json:"user_id"`
	Reputation int    `json:"reputation"`
	Streak     int    `json:"streak"`
	Country    string `json:"country"`
	Language   string `json:"language"`
}
