package metrics

import (
	"expvar"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hemna/aprsd-twitter-plugin/cache"
)

var (
	// PacketsReceived counts all packets handed to the dispatcher
	PacketsReceived = expvar.NewInt("packets_received")

	// CommandsExecuted increases after each plugin invocation
	CommandsExecuted = expvar.NewInt("commands_executed")

	// CommandsRatelimited counts packets dropped by the per-callsign buckets
	CommandsRatelimited = expvar.NewInt("commands_ratelimited")

	// TweetsSent counts successful status updates
	TweetsSent = expvar.NewInt("tweets_sent")

	// TweetsUnauthorized counts senders that failed the callsign check
	TweetsUnauthorized = expvar.NewInt("tweets_unauthorized")

	// TwitterAuthFailures counts failed credential verifications
	TwitterAuthFailures = expvar.NewInt("twitter_auth_failures")

	// TweetsFailed counts status updates rejected by twitter
	TweetsFailed = expvar.NewInt("tweets_failed")

	// Uptime stores the timestamp of the boot
	Uptime = expvar.NewInt("uptime")
)

// Init records the boot time and, when ip is set, serves /debug/vars on ip:1337.
func Init(ip string) {
	Uptime.Set(time.Now().Unix())
	if ip == "" {
		return
	}

	addr := net.JoinHostPort(ip, "1337")
	cache.GetLogger().WithField("module", "metrics").Info("Listening on " + addr)
	go func() {
		err := http.ListenAndServe(addr, nil)
		if err != nil {
			cache.GetLogger().WithField("module", "metrics").Errorf("metrics listener stopped: %s", err.Error())
		}
	}()
}

// LogSummary writes the current counters to the log.
func LogSummary() {
	started := time.Unix(Uptime.Value(), 0)
	cache.GetLogger().WithField("module", "metrics").Infof(
		"started %s, packets: %d, commands: %d, tweets sent: %d, unauthorized: %d, auth failures: %d, failed: %d",
		humanize.Time(started),
		PacketsReceived.Value(),
		CommandsExecuted.Value(),
		TweetsSent.Value(),
		TweetsUnauthorized.Value(),
		TwitterAuthFailures.Value(),
		TweetsFailed.Value(),
	)
}
