package models

const (
	CurrentUser      = "current_user"
	CurrentSession   = "current_session"
	CurrentSessionID = "current_session_id"
)

const (
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

const (
	ActionProductCreated = "product_created"
	ActionProductUpdated = "product_updated"
)

type (
	Pagination struct {
		Links struct {
			First    string `json:"first" example:"http://localhost:8080/v1/filter/products?limit=10"`
			Previous string `json:"previous" example:"http://localhost:8080/v1/filter/products?limit=10"`
			Current  string `json:"current" example:"http://localhost:8080/v1/filter/products?limit=10&page=2"`
			Next     string `json:"next" example:"http://localhost:8080/v1/filter/products?limit=10&page=3"`
		} `json:"links"`
		Info struct {
			Limit int64 `json:"limit" example:"10"`
			Pages int64 `json:"pages" example:"3"`
			Total int64 `json:"total" example:"25"`
		} `json:"info"`
	}

	Message struct {
		Action string `json:"action"`
		ID     string `json:"id"`
	}
)
