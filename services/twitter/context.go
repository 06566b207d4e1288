package twitter

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// contextWithHTTPClient makes oauth1 wrap $client instead of http.DefaultClient.
func contextWithHTTPClient(client *http.Client) context.Context {
	return context.WithValue(oauth1.NoContext, oauth1.HTTPClient, client)
}
