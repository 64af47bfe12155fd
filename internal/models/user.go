package models

const RoleAdmin = "admin"

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type LoginRequest struct {
	Username       string `json:"username" form:"username"`
	Password       string `json:"password" form:"password"`
	RecaptchaToken string `json:"recaptcha_token" form:"recaptcha_token"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
*/
type AdminResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
