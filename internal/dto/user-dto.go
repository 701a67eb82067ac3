package dto

// User is the users-service record. The password never appears here: the
// struct simply has no field for it, so decoding a login response is the
// sanitization step.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Position string `json:"position" validate:"required"`
	Code1    string `json:"code1" validate:"required"`
	Code2    string `json:"code2" validate:"required"`
}

// RegisterRequest is the upstream payload; the portal joins name and
// surname into the single name field the users service stores.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Position string `json:"position"`
	Code1    string `json:"code1"`
	Code2    string `json:"code2"`
}
