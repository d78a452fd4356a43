package models

// User is a full record of the demo record set. Password is plaintext and
// must never leave the server; use Public for anything sent to clients.
type User struct {
	ID       int64
	Username string
	Password string
	Name     string
}

// PublicUser is the public projection of a User.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Public strips the password from u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Name: u.Name}
}
