package api

import "net/url"

// RequestDescriptor describes one outbound call to the BrainStorm API.
type RequestDescriptor struct {
	// Method is the HTTP method, e.g. http.MethodPost.
	Method string

	// Path is relative to the gateway's base URL, e.g. "/api/users/login".
	Path string

	// Query holds optional URL query parameters.
	Query url.Values

	// Body, when non-nil, is serialized as the JSON request body.
	Body any
}
