package models

// Envelope is the OData response wrapper. Collection bodies carry the
// payload under "value"; failures may carry a structured error instead.
type Envelope[T any] struct {
	Context string       `json:"@odata.context"`
	Count   int          `json:"odata.count"`
	Value   T            `json:"value"`
	Error   *ErrorResult `json:"Error"`
}

type ErrorResult struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type TokenResponse struct {
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExtExpiresIn int    `json:"ext_expires_in"`
	AccessToken  string `json:"access_token"`
}
