package plugins

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hemna/aprsd-twitter-plugin/cache"
	"github.com/hemna/aprsd-twitter-plugin/helpers"
	"github.com/hemna/aprsd-twitter-plugin/metrics"
	"github.com/hemna/aprsd-twitter-plugin/models"
	"github.com/hemna/aprsd-twitter-plugin/services/twitter"
	"github.com/hemna/aprsd-twitter-plugin/version"
)

const (
	// TweetHashtags is appended to every tweet when add_aprs_hashtag is set
	TweetHashtags = " #aprs #aprsd #hamradio https://github.com/hemna/aprsd-twitter-plugin"

	ReplyTweetSent     = "Tweet sent!"
	ReplyFailedAuth    = "Failed to Auth"
	ReplyTweetFailed   = "Failed to send Tweet!"
	ReplyNotAuthorized = "%s not authorized to tweet!"
)

// Look for any command that starts with "tw " or "twitter"
var sendTweetRegex = regexp.MustCompile(`^([t][w]\s|twitter)`)

// ClientFactory hands out a verified twitter client or an error.
type ClientFactory func(config models.TwitterPluginConfig) (twitter.Client, error)

// SendTweet posts the text of a packet to twitter for the configured callsign.
type SendTweet struct {
	// NewClient is used for every tweet; nil means twitter.Connect.
	NewClient ClientFactory

	config  models.TwitterPluginConfig
	enabled bool
}

func (p *SendTweet) Name() string {
	return "tweet"
}

func (p *SendTweet) Version() string {
	return version.PLUGIN_VERSION
}

func (p *SendTweet) CommandRegex() *regexp.Regexp {
	return sendTweetRegex
}

func (p *SendTweet) Enabled() bool {
	return p.enabled
}

func (p *SendTweet) Help() []string {
	return []string{
		"twitter: Send a Tweet!!",
		"twitter: Format 'tw <message>'",
	}
}

func (p *SendTweet) Setup(config *models.Config) {
	log := cache.GetLogger().WithField("module", "twitter")

	p.enabled = true
	if config == nil {
		log.Error("No config passed to setup. Plugin Disabled.")
		p.enabled = false
		return
	}
	p.config = config.TwitterPlugin

	if p.config.Callsign == "" {
		log.Error("No aprsd_twitter_plugin.callsign is set. Callsign is needed to allow tweets!")
		p.enabled = false
	}

	if p.config.APIKey == "" {
		log.Error("No aprsd_twitter_plugin.apiKey is set! Plugin Disabled.")
		p.enabled = false
	}

	if p.config.APIKeySecret == "" {
		log.Error("No aprsd_twitter_plugin.apiKey_secret is set. Plugin Disabled.")
		p.enabled = false
	}

	if p.config.AccessToken == "" {
		log.Error("No aprsd_twitter_plugin.access_token exists. Plugin Disabled.")
		p.enabled = false
	}

	if p.config.AccessTokenSecret == "" {
		log.Error("No aprsd_twitter_plugin.access_token_secret exists. Plugin Disabled.")
		p.enabled = false
	}
}

// Process is called when a received packet matches CommandRegex.
func (p *SendTweet) Process(packet *models.Packet) string {
	log := cache.GetLogger().WithField("module", "twitter")
	log.Info("SendTweetPlugin Plugin")

	if !p.enabled {
		log.Warn("SendTweetPlugin is disabled.")
		return models.NullMessage
	}

	fromCallsign := packet.FromCall
	message := stripCommand(packet.MessageText)

	// Only allow the owner of aprsd to send a tweet
	if !strings.HasPrefix(fromCallsign, p.config.Callsign) {
		metrics.TweetsUnauthorized.Add(1)
		return fmt.Sprintf(ReplyNotAuthorized, fromCallsign)
	}

	client := p.createClient()
	if client == nil {
		log.Error("No twitter client!!")
		return ReplyFailedAuth
	}
	defer client.Close()

	if p.config.AddAPRSHashtag {
		message += TweetHashtags
	}

	if length := helpers.TweetLength(message); length > helpers.TweetMaxLength {
		log.Warnf("tweet from %s is %d characters long, twitter may reject it", fromCallsign, length)
	}

	id, err := client.Update(message)
	if err != nil {
		metrics.TweetsFailed.Add(1)
		helpers.RelaxLogWithTags(err, map[string]string{"from": fromCallsign})
		return ReplyTweetFailed
	}

	metrics.TweetsSent.Add(1)
	log.Infof("tweet #%s sent for %s", id, fromCallsign)
	return ReplyTweetSent
}

// createClient returns a verified client, or nil after logging why not.
func (p *SendTweet) createClient() twitter.Client {
	newClient := p.NewClient
	if newClient == nil {
		newClient = connectTwitter
	}

	client, err := newClient(p.config)
	if err != nil || client == nil {
		metrics.TwitterAuthFailures.Add(1)
		cache.GetLogger().WithField("module", "twitter").Error("Failed to auth to Twitter")
		helpers.RelaxLog(err)
		return nil
	}

	cache.GetLogger().WithField("module", "twitter").Debug("Logged in to Twitter Authentication OK")
	return client
}

func connectTwitter(config models.TwitterPluginConfig) (twitter.Client, error) {
	return twitter.Connect(config.Backend, twitter.Credentials{
		ConsumerKey:    config.APIKey,
		ConsumerSecret: config.APIKeySecret,
		AccessToken:    config.AccessToken,
		AccessSecret:   config.AccessTokenSecret,
	})
}

// stripCommand drops the command word and joins the rest with single spaces.
func stripCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}
