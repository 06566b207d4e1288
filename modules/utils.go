package modules

import (
	"fmt"
	"strconv"

	"github.com/hemna/aprsd-twitter-plugin/cache"
	"github.com/hemna/aprsd-twitter-plugin/helpers"
	"github.com/hemna/aprsd-twitter-plugin/metrics"
	"github.com/hemna/aprsd-twitter-plugin/models"
	"github.com/hemna/aprsd-twitter-plugin/ratelimits"
	"github.com/pkg/errors"
)

// Init sets up every plugin in PluginList with $config
func Init(config *models.Config) error {
	err := checkDuplicateCommands()
	if err != nil {
		return err
	}

	pluginCache = make(map[string]Plugin)
	logTemplate := "[PLUG] %s v%s reacts to [ %s ]"

	for _, plugin := range PluginList {
		pluginCache[plugin.Name()] = plugin

		cache.GetLogger().WithField("module", "modules").Info(fmt.Sprintf(
			logTemplate,
			plugin.Name(),
			plugin.Version(),
			plugin.CommandRegex().String(),
		))

		plugin.Setup(config)
		if !plugin.Enabled() {
			cache.GetLogger().WithField("module", "modules").Warnf("[PLUG] %s is disabled", plugin.Name())
		}
	}

	cache.GetLogger().WithField("module", "modules").Info(
		"Initializer finished. Loaded " + strconv.Itoa(len(PluginList)) + " plugins",
	)
	return nil
}

// GetPlugin returns an initialized plugin by name
func GetPlugin(name string) (Plugin, bool) {
	plugin, ok := pluginCache[name]
	return plugin, ok
}

// Matches is the dispatch predicate: does $text trigger $plugin?
func Matches(plugin Plugin, text string) bool {
	return plugin.CommandRegex().MatchString(text)
}

// CallBotPlugin hands $packet to the first plugin whose regex matches.
// handled is false when no plugin wants the packet.
func CallBotPlugin(packet *models.Packet) (reply string, handled bool) {
	metrics.PacketsReceived.Add(1)

	for _, plugin := range PluginList {
		if !Matches(plugin, packet.MessageText) {
			continue
		}

		// Consume a key for this action
		if ratelimits.Container.Drain(1, packet.FromCall) != nil {
			metrics.CommandsRatelimited.Add(1)
			cache.GetLogger().WithField("module", "modules").Warnf(
				"%s is out of keys, dropping %s command", packet.FromCall, plugin.Name())
			return models.NullMessage, true
		}

		metrics.CommandsExecuted.Add(1)
		return callPlugin(plugin, packet), true
	}

	return models.NullMessage, false
}

func callPlugin(plugin Plugin, packet *models.Packet) (reply string) {
	// A panicking plugin gets no reply out
	reply = models.NullMessage
	defer helpers.Recover()

	return plugin.Process(packet)
}

// HelpLines collects the help of all plugins
func HelpLines() []string {
	lines := make([]string, 0)
	for _, plugin := range PluginList {
		lines = append(lines, plugin.Help()...)
	}
	return lines
}

func checkDuplicateCommands() error {
	seen := make(map[string]bool)
	for _, plugin := range PluginList {
		if seen[plugin.Name()] {
			return errors.Errorf("plugin name %s is registered twice", plugin.Name())
		}
		seen[plugin.Name()] = true
	}
	return nil
}
