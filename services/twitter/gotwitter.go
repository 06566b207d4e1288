package twitter

import (
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
)

type goTwitterClient struct {
	client *twitter.Client
}

func newGoTwitterClient(creds Credentials, httpClient *http.Client) *goTwitterClient {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	ctx := oauth1.NoContext
	if httpClient != nil {
		ctx = contextWithHTTPClient(httpClient)
	}

	return &goTwitterClient{
		client: twitter.NewClient(config.Client(ctx, token)),
	}
}

func (c *goTwitterClient) VerifyCredentials() error {
	_, _, err := c.client.Accounts.VerifyCredentials(&twitter.AccountVerifyParams{
		SkipStatus: twitter.Bool(true),
	})
	return errors.Wrap(err, "go-twitter verify credentials")
}

func (c *goTwitterClient) Update(status string) (string, error) {
	tweet, _, err := c.client.Statuses.Update(status, nil)
	if err != nil {
		return "", errors.Wrap(err, "go-twitter status update")
	}
	return tweet.IDStr, nil
}

// Close is a no-op, go-twitter runs nothing in the background.
func (c *goTwitterClient) Close() {}
