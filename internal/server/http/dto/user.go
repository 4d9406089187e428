package dto

// UserResponse describes a user in listings.
type UserResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// UserProfileResponse describes a single user with their record ids.
type UserProfileResponse struct {
	ID           int64   `json:"id"`
	Login        string  `json:"login"`
	Role         string  `json:"role"`
	Applications []int64 `json:"applications"`
	Loans        []int64 `json:"loans"`
}
