package twitter

import (
	"net/http"

	"github.com/pkg/errors"
)

const (
	BackendGoTwitter = "go-twitter"
	BackendAnaconda  = "anaconda"
)

// Credentials are the four OAuth1 values of a twitter app and account.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Validate reports the first missing credential.
func (c Credentials) Validate() error {
	switch {
	case c.ConsumerKey == "":
		return errors.New("missing consumer key")
	case c.ConsumerSecret == "":
		return errors.New("missing consumer secret")
	case c.AccessToken == "":
		return errors.New("missing access token")
	case c.AccessSecret == "":
		return errors.New("missing access token secret")
	}
	return nil
}

// Client is the part of a twitter API client the plugin needs.
type Client interface {
	// VerifyCredentials does a round-trip proving the credentials work.
	VerifyCredentials() error

	// Update posts $status and returns the id of the new tweet.
	Update(status string) (string, error)

	// Close releases whatever the backend keeps running. The client is
	// unusable afterwards.
	Close()
}

// NewClient builds a client for $backend. A nil httpClient uses the
// backend's default transport.
func NewClient(backend string, creds Credentials, httpClient *http.Client) (Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	switch backend {
	case "", BackendGoTwitter:
		return newGoTwitterClient(creds, httpClient), nil
	case BackendAnaconda:
		return newAnacondaClient(creds, httpClient), nil
	}

	return nil, errors.Errorf("unknown twitter backend %q", backend)
}

// Connect builds a client and verifies its credentials. Callers get either a
// usable client or an error, never both.
func Connect(backend string, creds Credentials) (Client, error) {
	return ConnectWithHTTPClient(backend, creds, nil)
}

func ConnectWithHTTPClient(backend string, creds Credentials, httpClient *http.Client) (Client, error) {
	client, err := NewClient(backend, creds, httpClient)
	if err != nil {
		return nil, errors.Wrap(err, "creating twitter client")
	}

	err = client.VerifyCredentials()
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "verifying twitter credentials")
	}

	return client, nil
}
