package helpers

import (
	"os"

	"github.com/Jeffail/gabs"
	"github.com/caarlos0/env/v11"
	"github.com/hemna/aprsd-twitter-plugin/cache"
	"github.com/hemna/aprsd-twitter-plugin/conf"
	"github.com/hemna/aprsd-twitter-plugin/models"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadConfig reads the JSON config at $path, then applies .env and
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*models.Config, error) {
	container := gabs.New()
	if path != "" {
		parsed, err := gabs.ParseJSONFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
		container = parsed
	}

	config := ConfigFromContainer(container)

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	err = env.Parse(config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing environment overrides")
	}

	return config, nil
}

// LoadOptionalConfig is LoadConfig for a path that may legitimately be
// absent, like the default config.json. A missing file leaves the
// configuration to .env and the environment.
func LoadOptionalConfig(path string) (*models.Config, error) {
	if path != "" {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			cache.GetLogger().WithField("module", "config").Debugf("no config file at %s, using environment only", path)
			path = ""
		}
	}
	return LoadConfig(path)
}

// ConfigFromContainer resolves a parsed config document into typed values,
// falling back to the registered option defaults.
func ConfigFromContainer(container *gabs.Container) *models.Config {
	group := conf.TwitterGroup + "."

	return &models.Config{
		Debug:     getBool(container, "debug", false),
		Sentry:    getString(container, "sentry", ""),
		MetricsIP: getString(container, "metrics_ip", ""),
		Logging: models.LoggingConfig{
			JSONFile: getString(container, "logging.jsonfile", ""),
		},
		TwitterPlugin: models.TwitterPluginConfig{
			Callsign:          getString(container, group+conf.OptCallsign, optDefaultString(conf.OptCallsign)),
			APIKey:            getString(container, group+conf.OptAPIKey, optDefaultString(conf.OptAPIKey)),
			APIKeySecret:      getString(container, group+conf.OptAPIKeySecret, optDefaultString(conf.OptAPIKeySecret)),
			AccessToken:       getString(container, group+conf.OptAccessToken, optDefaultString(conf.OptAccessToken)),
			AccessTokenSecret: getString(container, group+conf.OptAccessTokenSecret, optDefaultString(conf.OptAccessTokenSecret)),
			AddAPRSHashtag:    getBool(container, group+conf.OptAddAPRSHashtag, optDefaultBool(conf.OptAddAPRSHashtag)),
			Backend:           getString(container, group+conf.OptBackend, optDefaultString(conf.OptBackend)),
		},
	}
}

func getString(container *gabs.Container, path string, fallback string) string {
	if !container.ExistsP(path) {
		return fallback
	}
	value, ok := container.Path(path).Data().(string)
	if !ok {
		return fallback
	}
	return value
}

func getBool(container *gabs.Container, path string, fallback bool) bool {
	if !container.ExistsP(path) {
		return fallback
	}
	value, ok := container.Path(path).Data().(bool)
	if !ok {
		return fallback
	}
	return value
}

func optDefaultString(name string) string {
	opt, ok := conf.Lookup(conf.TwitterGroup, name)
	if !ok {
		return ""
	}
	value, _ := opt.Default.(string)
	return value
}

func optDefaultBool(name string) bool {
	opt, ok := conf.Lookup(conf.TwitterGroup, name)
	if !ok {
		return false
	}
	value, _ := opt.Default.(bool)
	return value
}
