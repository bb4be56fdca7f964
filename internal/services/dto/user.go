package dto

// ProfileInfo - профиль без пароля.
type ProfileInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProfileResponse - прежний бэкенд отдавал профиль массивом строк
// результата запроса, фронт берет нулевой элемент.
type ProfileResponse struct {
	Success bool          `json:"success"`
	Profile []ProfileInfo `json:"profile"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type AdminUpdateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BlockUserRequest struct {
	// 1 = blocked, 0 = active; указатель, чтобы отличать 0 от отсутствия поля
	Blocked *int `json:"blocked" validate:"required,oneof=0 1"`
}
