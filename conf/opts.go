package conf

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// OptType mirrors the option kinds the host configuration subsystem knows about.
type OptType string

const (
	StrOpt  OptType = "StrOpt"
	BoolOpt OptType = "BoolOpt"
	IntOpt  OptType = "IntOpt"
)

const (
	FormatDict = "dict"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Opt struct {
	Name    string
	Type    OptType
	Default interface{}
	Help    string
	Secret  bool
	Choices []string
}

// Required is true for options without a default.
func (o Opt) Required() bool {
	return o.Default == nil
}

// ExportedOpt is the flat representation written by ExportConfig.
type ExportedOpt struct {
	Name     string      `json:"name" yaml:"name"`
	Type     OptType     `json:"type" yaml:"type"`
	Default  interface{} `json:"default" yaml:"default"`
	Help     string      `json:"help" yaml:"help"`
	Required bool        `json:"required" yaml:"required"`
	Choices  []string    `json:"choices,omitempty" yaml:"choices,omitempty"`
	Secret   bool        `json:"secret,omitempty" yaml:"secret,omitempty"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListOpts returns every option group this plugin registers.
func ListOpts() map[string][]Opt {
	return map[string][]Opt{
		TwitterGroup: twitterOpts,
	}
}

// Lookup finds an option of a group by name.
func Lookup(group, name string) (Opt, bool) {
	for _, opt := range ListOpts()[group] {
		if opt.Name == name {
			return opt, true
		}
	}
	return Opt{}, false
}

// Export flattens ListOpts into plain data.
func Export() map[string][]ExportedOpt {
	result := make(map[string][]ExportedOpt)
	for group, opts := range ListOpts() {
		exported := make([]ExportedOpt, 0, len(opts))
		for _, opt := range opts {
			exported = append(exported, ExportedOpt{
				Name:     opt.Name,
				Type:     opt.Type,
				Default:  opt.Default,
				Help:     opt.Help,
				Required: opt.Required(),
				Choices:  opt.Choices,
				Secret:   opt.Secret,
			})
		}
		result[group] = exported
	}
	return result
}

// ExportConfig renders Export in the given format. "dict" returns the map
// itself, "json" and "yaml" return a string.
func ExportConfig(format string) (interface{}, error) {
	result := Export()

	switch format {
	case FormatDict:
		return result, nil
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshalling config options")
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, errors.Wrap(err, "marshalling config options")
		}
		return string(data), nil
	}

	return nil, errors.Errorf("unknown export format %q, expected one of %v", format, Formats())
}

func Formats() []string {
	formats := []string{FormatDict, FormatJSON, FormatYAML}
	sort.Strings(formats)
	return formats
}
