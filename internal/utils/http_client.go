package utils

import "github.com/go-resty/resty/v2"

// HTTPClient embeds *resty.Client so callers get the full resty API while
// application-level helpers can be hung off the wrapper. Each instance owns
// its own connection pool and configuration.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent, default-configured client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
