package conf

import (
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

func TestListOpts(t *testing.T) {
	opts := ListOpts()[TwitterGroup]
	if len(opts) != 7 {
		t.Fatalf("ListOpts() returned %d options for %s, want 7", len(opts), TwitterGroup)
	}

	opt, ok := Lookup(TwitterGroup, OptAddAPRSHashtag)
	if !ok || opt.Type != BoolOpt || opt.Default != true || opt.Required() {
		t.Fatalf("add_aprs_hashtag = %+v, want a bool defaulting to true", opt)
	}

	opt, ok = Lookup(TwitterGroup, OptCallsign)
	if !ok || !opt.Required() {
		t.Fatalf("callsign = %+v, want a required option", opt)
	}

	if _, ok = Lookup(TwitterGroup, "bearer_token"); ok {
		t.Fatalf("Lookup() found an option that is not registered")
	}
}

func TestExportConfigJSON(t *testing.T) {
	result, err := ExportConfig(FormatJSON)
	if err != nil {
		t.Fatalf("ExportConfig(json) failed: %v", err)
	}

	var parsed map[string][]map[string]interface{}
	if err = json.Unmarshal([]byte(result.(string)), &parsed); err != nil {
		t.Fatalf("ExportConfig(json) is not valid json: %v", err)
	}

	group := parsed[TwitterGroup]
	if len(group) != 7 {
		t.Fatalf("exported group has %d options, want 7", len(group))
	}
	for _, opt := range group {
		if opt["name"] == OptAddAPRSHashtag && opt["default"] != true {
			t.Fatalf("exported add_aprs_hashtag default = %v, want true", opt["default"])
		}
		if opt["name"] == OptAPIKey && opt["secret"] != true {
			t.Fatalf("exported apiKey is not marked secret")
		}
	}
}

func TestExportConfigYAML(t *testing.T) {
	result, err := ExportConfig(FormatYAML)
	if err != nil {
		t.Fatalf("ExportConfig(yaml) failed: %v", err)
	}

	var parsed map[string][]ExportedOpt
	if err = yaml.Unmarshal([]byte(result.(string)), &parsed); err != nil {
		t.Fatalf("ExportConfig(yaml) is not valid yaml: %v", err)
	}
	if len(parsed[TwitterGroup]) != 7 {
		t.Fatalf("exported yaml group has %d options, want 7", len(parsed[TwitterGroup]))
	}
}

func TestExportConfigDict(t *testing.T) {
	result, err := ExportConfig(FormatDict)
	if err != nil {
		t.Fatalf("ExportConfig(dict) failed: %v", err)
	}
	if _, ok := result.(map[string][]ExportedOpt); !ok {
		t.Fatalf("ExportConfig(dict) returned %T", result)
	}
}

func TestExportConfigUnknownFormat(t *testing.T) {
	_, err := ExportConfig("toml")
	if err == nil || !strings.Contains(err.Error(), "toml") {
		t.Fatalf("ExportConfig(toml) error = %v", err)
	}
}
