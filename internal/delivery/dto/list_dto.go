package dto

// PageRequest is the pagination part shared by every list request.
type PageRequest struct {
	ItemsPerPage int `json:"itemsPerPage" validate:"min=1,max=100"`
	Page         int `json:"page" validate:"min=1"`
}
