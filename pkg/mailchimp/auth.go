package mailchimp

import (
	"encoding/base64"
)

// basicAuthUser is ignored by Mailchimp; only the API key (password) matters.
const basicAuthUser = "anystring"

// basicAuth builds the Authorization header value for an API key.
// Mailchimp accepts HTTP Basic auth with any username and the key as password.
func basicAuth(apiKey string) string {
	creds := basicAuthUser + ":" + apiKey
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

func (m *Mailchimp) headers() map[string]string {
	return map[string]string{
		"Authorization": m.authHeader,
	}
}
