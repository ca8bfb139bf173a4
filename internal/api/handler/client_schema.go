package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// renameClientRequest deliberately has no "required" tag: an empty or
// whitespace-only name is a valid request that leaves the name unchanged.
type renameClientRequest struct {
	Name string `json:"name" validate:"max=120"`
}

type quantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta"      validate:"required,oneof=-1 1"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type productResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type catalogResponse struct {
	Products []productResponse `json:"products"`
}

// orderRowResponse is one catalog product within a client's editor view,
// including rows at quantity 0.
type orderRowResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type clientDetailResponse struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Rows  []orderRowResponse `json:"rows"`
	Total float64            `json:"total"`
}

// orderLineResponse is a compact board line; only quantities above 0 appear.
type orderLineResponse struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type clientSummaryResponse struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Lines []orderLineResponse `json:"lines"`
	Total float64             `json:"total"`
}

type boardResponse struct {
	Clients    []clientSummaryResponse `json:"clients"`
	GrandTotal float64                 `json:"grand_total"`
}
