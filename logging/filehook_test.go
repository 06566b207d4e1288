package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogrusFileHookWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aprsd.json")

	hook, err := NewLogrusFileHook(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		t.Fatalf("NewLogrusFileHook() failed: %v", err)
	}

	log := logrus.New()
	log.Out = &strings.Builder{}
	log.Hooks.Add(hook)
	log.WithField("module", "twitter").Info("Tweet sent!")

	if err = hook.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"module":"twitter"`) || !strings.Contains(line, `"msg":"Tweet sent!"`) {
		t.Fatalf("log file does not contain the json entry: %s", line)
	}
}

func TestNewLogrusFileHookBadPath(t *testing.T) {
	_, err := NewLogrusFileHook(filepath.Join(t.TempDir(), "missing", "aprsd.json"), os.O_RDWR, 0666)
	if err == nil {
		t.Fatalf("NewLogrusFileHook() opened a file in a missing directory")
	}
}
