package version

import "github.com/hemna/aprsd-twitter-plugin/cache"

// Version related vars
// Set by compiler
var (
	// PLUGIN_VERSION example: 0.3.0-2-g1c9e0d4
	PLUGIN_VERSION string = "DEV_SNAPSHOT"

	// BUILD_TIME example: Sat Jan  8 14:02:11 EST 2022
	BUILD_TIME string = "UNSET"

	// BUILD_USER example: hemna
	BUILD_USER string = "UNSET"

	// BUILD_HOST example: aprs-igate
	BUILD_HOST string = "UNSET"
)

// DumpInfo dumps all above vars
func DumpInfo() {
	cache.GetLogger().WithField("module", "version").Debug("PLUGIN VERSION: " + PLUGIN_VERSION)
	cache.GetLogger().WithField("module", "version").Debug("BUILD TIME: " + BUILD_TIME)
	cache.GetLogger().WithField("module", "version").Debug("BUILD USER: " + BUILD_USER)
	cache.GetLogger().WithField("module", "version").Debug("BUILD HOST: " + BUILD_HOST)
}
