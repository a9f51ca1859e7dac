package response

// ErrorResp is the JSON body written for every failed request.
type ErrorResp struct {
	Detail string `json:"detail"`
}

const (
	DefaultErrorMessage = "Internal server error"
)
