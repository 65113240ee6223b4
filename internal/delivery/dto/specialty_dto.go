package dto

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GetSpecialtyListRequest struct {
	PageRequest
	Name *string `json:"name"`
}

type GetSpecialtyListResponse struct {
	Total int64               `json:"total"`
	Items []SpecialtyResponse `json:"items"`
}

type SpecialtyForm struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
