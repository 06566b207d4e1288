package modules

import (
	"github.com/hemna/aprsd-twitter-plugin/modules/plugins"
)

var (
	pluginCache map[string]Plugin

	PluginList = []Plugin{
		&plugins.SendTweet{},
	}
)
