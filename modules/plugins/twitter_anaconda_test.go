package plugins

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/hemna/aprsd-twitter-plugin/models"
	"github.com/hemna/aprsd-twitter-plugin/services/twitter"
)

// redirectTransport sends every request to the test server, whatever its host.
type redirectTransport struct {
	target *url.URL
}

func (t *redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.target.Scheme
	clone.URL.Host = t.target.Host
	clone.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(clone)
}

// newAnacondaPlugin returns a set up plugin on the anaconda backend that
// talks to a local fake of the twitter API.
func newAnacondaPlugin(t *testing.T) *SendTweet {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"id_str":"42","screen_name":"wb4bor"}`))
	}))
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	httpClient := &http.Client{Transport: &redirectTransport{target: target}}

	config := testConfig()
	config.TwitterPlugin.Backend = twitter.BackendAnaconda

	plugin := &SendTweet{
		NewClient: func(config models.TwitterPluginConfig) (twitter.Client, error) {
			return twitter.ConnectWithHTTPClient(config.Backend, twitter.Credentials{
				ConsumerKey:    config.APIKey,
				ConsumerSecret: config.APIKeySecret,
				AccessToken:    config.AccessToken,
				AccessSecret:   config.AccessTokenSecret,
			}, httpClient)
		},
	}
	plugin.Setup(config)
	return plugin
}

func TestSendTweetAnacondaNoGoroutineGrowth(t *testing.T) {
	plugin := newAnacondaPlugin(t)
	packet := &models.Packet{FromCall: "WB4BOR", MessageText: "tw This is a test tweet"}

	if reply := plugin.Process(packet); reply != ReplyTweetSent {
		t.Fatalf("Process() = %q, want %q", reply, ReplyTweetSent)
	}
	before := runtime.NumGoroutine()

	for i := 0; i < 50; i++ {
		if reply := plugin.Process(packet); reply != ReplyTweetSent {
			t.Fatalf("Process() = %q, want %q", reply, ReplyTweetSent)
		}
	}

	after := runtime.NumGoroutine()
	for deadline := time.Now().Add(2 * time.Second); after > before+5 && time.Now().Before(deadline); {
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	if after > before+5 {
		t.Fatalf("goroutines grew from %d to %d over 50 tweets", before, after)
	}
}

func TestSendTweetAnacondaConcurrentProcess(t *testing.T) {
	plugin := newAnacondaPlugin(t)

	var wg sync.WaitGroup
	replies := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			replies <- plugin.Process(&models.Packet{FromCall: "WB4BOR-7", MessageText: "tw 73 from the field"})
		}()
	}
	wg.Wait()
	close(replies)

	for reply := range replies {
		if reply != ReplyTweetSent {
			t.Fatalf("concurrent Process() = %q, want %q", reply, ReplyTweetSent)
		}
	}
}
