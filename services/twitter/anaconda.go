package twitter

import (
	"net/http"
	"sync"

	"github.com/ChimeraCoder/anaconda"
	"github.com/pkg/errors"
)

// anaconda keeps the consumer key pair in a package global that every
// request signs with. consumerLock is held from installing a client's pair
// until its request returns.
var (
	consumerLock   sync.Mutex
	consumerKey    string
	consumerSecret string
)

type anacondaClient struct {
	api   *anaconda.TwitterApi
	creds Credentials
}

func newAnacondaClient(creds Credentials, httpClient *http.Client) *anacondaClient {
	api := anaconda.NewTwitterApi(creds.AccessToken, creds.AccessSecret)
	if httpClient != nil {
		api.HttpClient = httpClient
	}

	return &anacondaClient{api: api, creds: creds}
}

// useConsumer installs the client's consumer pair and returns with
// consumerLock held.
func (c *anacondaClient) useConsumer() {
	consumerLock.Lock()
	if consumerKey != c.creds.ConsumerKey {
		anaconda.SetConsumerKey(c.creds.ConsumerKey)
		consumerKey = c.creds.ConsumerKey
	}
	if consumerSecret != c.creds.ConsumerSecret {
		anaconda.SetConsumerSecret(c.creds.ConsumerSecret)
		consumerSecret = c.creds.ConsumerSecret
	}
}

func (c *anacondaClient) VerifyCredentials() error {
	c.useConsumer()
	ok, err := c.api.VerifyCredentials()
	consumerLock.Unlock()

	if err != nil {
		return errors.Wrap(err, "anaconda verify credentials")
	}
	if !ok {
		return errors.New("anaconda verify credentials: rejected")
	}
	return nil
}

func (c *anacondaClient) Update(status string) (string, error) {
	c.useConsumer()
	tweet, err := c.api.PostTweet(status, nil)
	consumerLock.Unlock()

	if err != nil {
		return "", errors.Wrap(err, "anaconda post tweet")
	}
	return tweet.IdStr, nil
}

// Close stops the query goroutine anaconda starts for every TwitterApi.
func (c *anacondaClient) Close() {
	c.api.Close()
}
