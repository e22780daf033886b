package dto

// TableRequest parámetros comunes de los listados tabulares.
type TableRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Format   string `query:"format"` // json (default), xlsx, pdf
}

// Normalize aplica valores por defecto.
func (r *TableRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = 10
	}
	if r.Format == "" {
		r.Format = "json"
	}
}

// PageResponse envoltura de listado paginado.
type PageResponse[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
