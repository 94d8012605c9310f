package models

// BasicResponse is a status message
type BasicResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"` // "success" or "error"
}

// ExampleRequest shows how to call one endpoint
type ExampleRequest struct {
	Method string      `json:"method"`
	Path   string      `json:"path"`
	Body   interface{} `json:"body"`
}

// RootResponse describes the service
type RootResponse struct {
	Message   string         `json:"message"`
	Endpoints []string       `json:"endpoints"`
	Example   ExampleRequest `json:"example"`
}
