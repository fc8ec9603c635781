package response

// MenuResponse represents one screen reachable by the current viewer
type MenuResponse struct {
	Code     string `json:"code" example:"billing"`
	Name     string `json:"name" example:"Billing"`
	Path     string `json:"path" example:"/billing"`
	Order    int    `json:"order" example:"1"`
	IsActive bool   `json:"is_active" example:"true"`
}
