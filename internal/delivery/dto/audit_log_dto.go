package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"userId,omitempty"`
	UserEmail string                 `json:"userEmail,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type GetAuditLogListRequest struct {
	PageRequest
}

type GetAuditLogListResponse struct {
	Total int64              `json:"total"`
	Items []AuditLogResponse `json:"items"`
}
