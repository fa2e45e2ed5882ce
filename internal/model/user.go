package model

// User is the authenticated portal identity, derived from the stored
// session rather than read ambiently by the stores.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
