package handler

type createManagerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateManagerRequest is a partial edit; empty fields leave the stored
// value unchanged. A non-empty password is re-hashed before storage.
type updateManagerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}
