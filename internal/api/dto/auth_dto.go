package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	UserID        int64   `json:"userId"`
	Username      string  `json:"username"`
	Email         *string `json:"email"`
	FavoriteGenre *string `json:"favoriteGenre"`
}

type ProfileUpdateRequest struct {
	Email         *string `json:"email"`
	FavoriteGenre *string `json:"favoriteGenre"`
}
