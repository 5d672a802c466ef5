package transport

// Request describes an outbound API request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL.
	Path string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts []byte for pre-encoded payloads or
	// any value that will be JSON-encoded. Nil sends no body.
	Body any
	// NoAuth skips credential resolution for this request. Only the
	// service-info and health endpoints are open.
	NoAuth bool
}

// Response is the result of an API request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
