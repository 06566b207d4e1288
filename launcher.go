package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hemna/aprsd-twitter-plugin/cache"
	"github.com/hemna/aprsd-twitter-plugin/conf"
	"github.com/hemna/aprsd-twitter-plugin/helpers"
	"github.com/hemna/aprsd-twitter-plugin/logging"
	"github.com/hemna/aprsd-twitter-plugin/metrics"
	"github.com/hemna/aprsd-twitter-plugin/models"
	"github.com/hemna/aprsd-twitter-plugin/modules"
	"github.com/hemna/aprsd-twitter-plugin/ratelimits"
	"github.com/hemna/aprsd-twitter-plugin/version"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const defaultConfigPath = "config.json"

// Entrypoint
func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	var code int
	switch command := os.Args[1]; command {
	case "export-config":
		code = exportConfigCmd(os.Args[2:])
	case "check-config":
		code = checkConfigCmd(os.Args[2:])
	case "send":
		code = sendCmd(os.Args[2:])
	case "help", "--help", "-h":
		printHelp()
	case "version", "--version", "-v":
		fmt.Printf("aprsd-twitter-plugin v%s\n", version.PLUGIN_VERSION)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printHelp()
		code = 1
	}
	os.Exit(code)
}

func printHelp() {
	fmt.Println("aprsd-twitter-plugin - send tweets from APRS messages")
	fmt.Println()
	fmt.Println("Usage: aprsd-twitter-plugin <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export-config [--format json|dict|yaml]           Export plugin configuration options")
	fmt.Println("  check-config [--config path]                      Validate the plugin configuration")
	fmt.Println("  send [--config path] --from CALLSIGN <message>    Run one message through the plugins")
	fmt.Println("  version                                           Show version")
}

func exportConfigCmd(args []string) int {
	flags := flag.NewFlagSet("export-config", flag.ContinueOnError)
	format := flags.String("format", conf.FormatJSON, "Output format ("+strings.Join(conf.Formats(), ", ")+")")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	result, err := conf.ExportConfig(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting config: %v\n", err)
		return 1
	}

	if text, ok := result.(string); ok {
		fmt.Println(text)
		return 0
	}

	// dict goes out as json, it is what any caller of the CLI can read
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting config: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

func checkConfigCmd(args []string) int {
	flags := flag.NewFlagSet("check-config", flag.ContinueOnError)
	configPath := flags.String("config", defaultConfigPath, "Path to the JSON config file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	config, closeLogs, err := boot(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLogs()

	code := 0
	for _, plugin := range modules.PluginList {
		state := "enabled"
		if !plugin.Enabled() {
			state = "disabled"
			code = 1
		}
		cache.GetLogger().WithField("module", "launcher").Infof("%s v%s is %s", plugin.Name(), plugin.Version(), state)
	}
	if config.TwitterPlugin.Callsign != "" {
		cache.GetLogger().WithField("module", "launcher").Infof("tweets allowed for callsigns starting with %s", config.TwitterPlugin.Callsign)
	}
	return code
}

func sendCmd(args []string) int {
	flags := flag.NewFlagSet("send", flag.ContinueOnError)
	configPath := flags.String("config", defaultConfigPath, "Path to the JSON config file")
	from := flags.String("from", "", "Callsign the message comes from")
	to := flags.String("to", "APRSD", "Callsign the message is addressed to")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *from == "" || flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: aprsd-twitter-plugin send [--config path] --from CALLSIGN <message>")
		return 1
	}

	_, closeLogs, err := boot(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLogs()

	stop := make(chan struct{})
	defer close(stop)
	ratelimits.Container.Init(stop)

	packet := &models.Packet{
		FromCall:    *from,
		ToCall:      *to,
		MessageText: strings.Join(flags.Args(), " "),
	}

	reply, handled := modules.CallBotPlugin(packet)
	defer metrics.LogSummary()
	if !handled {
		fmt.Fprintf(os.Stderr, "No plugin handles %q\n", packet.MessageText)
		return 1
	}
	if reply != models.NullMessage {
		fmt.Println(reply)
	}
	return 0
}

// boot wires logging, sentry, metrics and the plugins the way a host would.
func boot(configPath string) (*models.Config, func(), error) {
	log := logrus.New()
	log.Out = os.Stdout
	log.Level = logrus.InfoLevel
	log.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true, TimestampFormat: time.RFC3339}
	log.Hooks = make(logrus.LevelHooks)
	cache.SetLogger(log)

	loadConfig := helpers.LoadConfig
	if configPath == defaultConfigPath {
		loadConfig = helpers.LoadOptionalConfig
	}
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if config.Debug {
		helpers.DEBUG_MODE = true
		log.Level = logrus.DebugLevel
	}

	closeLogs := func() {}
	if config.Logging.JSONFile != "" {
		fileHook, err := logging.NewLogrusFileHook(config.Logging.JSONFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			log.WithField("module", "launcher").Error("logrus file hook failed, err:", err.Error())
		} else {
			log.Hooks.Add(fileHook)
			closeLogs = func() {
				fileHook.Close()
			}
		}
	}

	log.WithField("module", "launcher").Info("Booting aprsd-twitter-plugin...")
	version.DumpInfo()

	err = helpers.SetupSentry(config.Sentry, version.PLUGIN_VERSION)
	if err != nil {
		closeLogs()
		return nil, nil, err
	}

	metrics.Init(config.MetricsIP)

	err = modules.Init(config)
	if err != nil {
		closeLogs()
		return nil, nil, err
	}

	return config, closeLogs, nil
}
