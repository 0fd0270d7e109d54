package github

import "net/http"

// defaultTokenHosts are the GitHub hosts that receive the token.
// Redirect targets such as codeload.github.com or objects.githubusercontent.com
// serve signed URLs and must not see it.
var defaultTokenHosts = []string{"github.com", "api.github.com", "uploads.github.com"}

// bearerTransport authenticates requests to tokenHosts with a static token.
type bearerTransport struct {
	token      string
	userAgent  string
	tokenHosts map[string]bool
	base       http.RoundTripper
}

func newBearerTransport(token, userAgent string, hosts ...string) *bearerTransport {
	t := &bearerTransport{
		token:      token,
		userAgent:  userAgent,
		tokenHosts: make(map[string]bool, len(defaultTokenHosts)+len(hosts)),
	}
	for _, h := range defaultTokenHosts {
		t.tokenHosts[h] = true
	}
	for _, h := range hosts {
		t.tokenHosts[h] = true
	}
	return t
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Del("Authorization")
	if t.token != "" && t.tokenHosts[r.URL.Host] {
		r.Header.Set("Authorization", "Bearer "+t.token)
	}
	r.Header.Set("User-Agent", t.userAgent)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
