package dto

type GetThemeResponse struct {
	Theme string `json:"theme"`
}

type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}
