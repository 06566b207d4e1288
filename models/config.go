package models

// Config is the resolved configuration handed to the plugins at setup.
type Config struct {
	Debug     bool   `env:"APRSD_DEBUG"`
	Sentry    string `env:"APRSD_SENTRY_DSN"`
	MetricsIP string `env:"APRSD_METRICS_IP"`

	Logging       LoggingConfig
	TwitterPlugin TwitterPluginConfig
}

type LoggingConfig struct {
	JSONFile string `env:"APRSD_LOGGING_JSONFILE"`
}

// TwitterPluginConfig holds the aprsd_twitter_plugin group.
type TwitterPluginConfig struct {
	// Callsign is the prefix a sender must have to be allowed to tweet.
	Callsign          string `env:"APRSD_TWITTER_PLUGIN_CALLSIGN"`
	APIKey            string `env:"APRSD_TWITTER_PLUGIN_APIKEY"`
	APIKeySecret      string `env:"APRSD_TWITTER_PLUGIN_APIKEY_SECRET"`
	AccessToken       string `env:"APRSD_TWITTER_PLUGIN_ACCESS_TOKEN"`
	AccessTokenSecret string `env:"APRSD_TWITTER_PLUGIN_ACCESS_TOKEN_SECRET"`
	AddAPRSHashtag    bool   `env:"APRSD_TWITTER_PLUGIN_ADD_APRS_HASHTAG"`
	Backend           string `env:"APRSD_TWITTER_PLUGIN_BACKEND"`
}
