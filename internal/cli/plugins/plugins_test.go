package plugins

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFindPlugin_NotFound(t *testing.T) {
	// Point HOME at an empty dir so a real ~/.logstats/plugins can't interfere
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PATH", t.TempDir())

	_, err := FindPlugin("definitely-not-a-real-plugin")
	if !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("FindPlugin() error = %v, want ErrPluginNotFound", err)
	}
}

func TestFindPlugin_InPluginsDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	pluginsDir := filepath.Join(home, ".logstats", "plugins")
	if err := os.MkdirAll(pluginsDir, 0755); err != nil {
		t.Fatal(err)
	}

	pluginPath := filepath.Join(pluginsDir, "logstats-testplugin")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindPlugin("testplugin")
	if err != nil {
		t.Fatalf("FindPlugin() error = %v", err)
	}
	if found != pluginPath {
		t.Errorf("FindPlugin() = %q, want %q", found, pluginPath)
	}
}

func TestFindPlugin_NotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PATH", t.TempDir())

	pluginsDir := filepath.Join(home, ".logstats", "plugins")
	if err := os.MkdirAll(pluginsDir, 0755); err != nil {
		t.Fatal(err)
	}

	// File exists but lacks the executable bit
	pluginPath := filepath.Join(pluginsDir, "logstats-noexec")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := FindPlugin("noexec")
	if !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("FindPlugin() error = %v, want ErrPluginNotFound", err)
	}
}

func TestExecute_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	pluginPath := filepath.Join(t.TempDir(), "logstats-exit7")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\nexit 7\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if code := Execute(pluginPath, nil); code != 7 {
		t.Errorf("Execute() = %d, want 7", code)
	}
}

func TestFormatNotFoundError(t *testing.T) {
	msg := FormatNotFoundError("frobnicate")

	wants := []string{
		`unknown command "frobnicate"`,
		"logstats-frobnicate in the same directory",
		"~/.logstats/plugins/logstats-frobnicate",
		"anywhere in your PATH",
	}
	for _, want := range wants {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}

	dir := t.TempDir()

	exec := filepath.Join(dir, "exec")
	if err := os.WriteFile(exec, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	if !isExecutable(exec) {
		t.Error("isExecutable(exec) = false, want true")
	}
	if isExecutable(plain) {
		t.Error("isExecutable(plain) = true, want false")
	}
	if isExecutable(filepath.Join(dir, "missing")) {
		t.Error("isExecutable(missing) = true, want false")
	}
	if isExecutable(dir) {
		t.Error("isExecutable(dir) = true, want false")
	}
}
