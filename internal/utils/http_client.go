package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client, embedding it to expose all of its methods
// directly while leaving room for application-specific extension.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with a default-configured
// underlying resty.Client.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
