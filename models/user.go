package models

type User struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	DisplayName       string `json:"displayName"`
	Handle            string `json:"handle"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	PasswordHash      string `json:"-"`
	Verified          bool   `json:"verified"`
	VerificationToken string `json:"-"`
}

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
