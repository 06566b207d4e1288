package modules

import (
	"regexp"

	"github.com/hemna/aprsd-twitter-plugin/models"
)

type BaseModule interface{}

// Plugin is the contract a regex command plugin fulfils towards the host.
type Plugin interface {
	BaseModule

	// Name is the short command name used in logs and help listings.
	Name() string
	Version() string

	// CommandRegex decides which packets are dispatched to Process.
	CommandRegex() *regexp.Regexp

	// Setup runs once, before the first Process call.
	Setup(config *models.Config)
	Enabled() bool

	Process(packet *models.Packet) string
	Help() []string
}
