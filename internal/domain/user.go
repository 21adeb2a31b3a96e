package domain

type User struct {
	ID             int32  `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	HashedPassword string `json:"-"`
	IsAdmin        bool   `json:"is_admin"`
}
