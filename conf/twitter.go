package conf

// TwitterGroup is the config group every plugin option lives in.
const TwitterGroup = "aprsd_twitter_plugin"

const (
	OptCallsign          = "callsign"
	OptAPIKey            = "apiKey"
	OptAPIKeySecret      = "apiKey_secret"
	OptAccessToken       = "access_token"
	OptAccessTokenSecret = "access_token_secret"
	OptAddAPRSHashtag    = "add_aprs_hashtag"
	OptBackend           = "backend"
)

var twitterOpts = []Opt{
	{
		Name: OptCallsign,
		Type: StrOpt,
		Help: "Callsign allowed to send tweets! " +
			"Any callsign starting with this will be allowed to tweet to " +
			"the configured twitter account. " +
			"For example, if you set this to WB4BOR then any " +
			"callsign starting with WB4BOR will be allowed to tweet. " +
			"This way WB4BOR-1 can tweet from this instance.",
	},
	{
		Name: OptAPIKey,
		Type: StrOpt,
		Help: "Your twitter apiKey. " +
			"Information for creating your api keys is here: " +
			"https://developer.twitter.com/en/docs/authentication/oauth-1-0a/api-key-and-secret",
		Secret: true,
	},
	{
		Name:   OptAPIKeySecret,
		Type:   StrOpt,
		Help:   "Your twitter accounts apikey secret.",
		Secret: true,
	},
	{
		Name:   OptAccessToken,
		Type:   StrOpt,
		Help:   "The twitter access_token for your Twitter account",
		Secret: true,
	},
	{
		Name:   OptAccessTokenSecret,
		Type:   StrOpt,
		Help:   "The twitter access token secret for your Twitter account",
		Secret: true,
	},
	{
		Name:    OptAddAPRSHashtag,
		Type:    BoolOpt,
		Default: true,
		Help:    "Automatically add #aprs hash tag to every tweet?",
	},
	{
		Name:    OptBackend,
		Type:    StrOpt,
		Default: "go-twitter",
		Help:    "Twitter client library used to post.",
		Choices: []string{"go-twitter", "anaconda"},
	},
}
