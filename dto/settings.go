package dto

// ServiceStatusRequest sets the coming-soon flag of one service
type ServiceStatusRequest struct {
	Name       string `json:"name" binding:"required"`
	ComingSoon *bool  `json:"coming_soon"`
}
