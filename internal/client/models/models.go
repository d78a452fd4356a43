// Package models holds the client-side view of API payloads.
package models

import (
	"encoding/json"
	"time"
)

// User is the public user projection returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResult is a successful login. Token is set only when the server
// enforces login on its data endpoints.
type LoginResult struct {
	Message string
	User    User
	Token   string
}

// ServerStatus is the body of GET /.
type ServerStatus struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ProcessResult is a completed process-data call. Input and Result keep the
// server's raw JSON so non-string values render faithfully.
type ProcessResult struct {
	Action    string
	Input     json.RawMessage
	Result    json.RawMessage
	Message   string
	Timestamp time.Time
}

// UserList is the body of GET /api/users.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
