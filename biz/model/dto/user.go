package dto

type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SignupReq struct {
	Email    string `json:"email" validate:"required,max=254,email_format"`
	Password string `json:"password" validate:"required,max=72,password_strength"`
	Name     string `json:"name" validate:"required,max=64"`
}

type SignupResp struct {
	User *User `json:"user"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResp struct {
	AuthToken string `json:"authToken"`
}

type VerifyResp = User
