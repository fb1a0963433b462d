package common

// SuccessResponse wraps every 2xx JSON body as {"data": ...}.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

type Pagination struct {
	Total int64 `json:"total"`
}

// SearchResponse is a list body with the number of matching rows.
type SearchResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewSearchResponse never encodes a nil slice as null.
func NewSearchResponse[T any](items []T) *SearchResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &SearchResponse[T]{
		Data:       items,
		Pagination: Pagination{Total: int64(len(items))},
	}
}
