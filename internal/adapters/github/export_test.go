package github

import (
	"net/http"
	"net/url"
)

// NewFactoryForServer creates a Factory whose API and upload endpoints point at serverURL.
func NewFactoryForServer(serverURL string) *Factory {
	u, err := url.Parse(serverURL + "/")
	if err != nil {
		panic(err)
	}
	return &Factory{baseURL: u, uploadURL: u}
}

// NewBearerTransport exposes the authenticating transport over base.
func NewBearerTransport(token string, base http.RoundTripper) http.RoundTripper {
	t := newBearerTransport(token, "brewtap/test")
	t.base = base
	return t
}
