package dto

type StatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GetStatusListRequest struct {
	PageRequest
	Name *string `json:"name"`
}

type GetStatusListResponse struct {
	Total int64            `json:"total"`
	Items []StatusResponse `json:"items"`
}

type StatusForm struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
