package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"add", "holdings", "ask", "feed", "topic", "help"} {
		if !IsCommand(name) {
			t.Errorf("IsCommand(%q) = false, want true", name)
		}
	}
	if IsCommand("hello") {
		t.Errorf("IsCommand(%q) = true, want false", "hello")
	}
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	tempDir := t.TempDir()

	// fbd-hello prints what it received.
	script := "#!/bin/sh\necho \"config=$" + EnvConfigFile + "\"\necho \"args=$*\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, ExtensionPrefix+"hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	expectedConfig := filepath.Join(tempDir, "finpulse.toml")
	prevConfig := *configFile
	*configFile = expectedConfig
	defer func() { *configFile = prevConfig }()

	var out bytes.Buffer
	prevOut := stdout
	stdout = &out
	defer func() { stdout = prevOut }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("extension fbd-hello was not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	for _, want := range []string{"config=" + expectedConfig, "args=a b"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("extension output misses %q:\n%s", want, out.String())
		}
	}

	if found, _ := RunExtension("missing-for-sure", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}
