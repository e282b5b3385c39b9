package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second, "1 second"},
		{time.Minute*2 + time.Second*3, "2 minutes, 3 seconds"},
		{time.Hour*1 + time.Minute*2 + time.Second*3, "1 hour, 2 minutes, 3 seconds"},
	}
	for _, c := range cases {
		got := formatUptime(c.d)
		if got != c.want {
			t.Errorf("formatUptime(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

// TestPlural checks plural utility
func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("plural(1) = %q, want \"\"", plural(1))
	}
	if plural(2) != "s" {
		t.Errorf("plural(2) = %q, want \"s\"", plural(2))
	}
}

// TestDirExists checks directory existence utility
func TestDirExists(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "words.txt")
	if err := os.WriteFile(file, []byte("ветка\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if dirExists(file) {
		t.Errorf("dirExists(%q) = true, want false", file)
	}
	if !dirExists(tmp) {
		t.Errorf("dirExists(%q) = false, want true", tmp)
	}
	if dirExists(filepath.Join(tmp, "missing")) {
		t.Errorf("dirExists on a missing path = true, want false")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := getEnv("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want \"value\"", got)
	}
	if got := getEnv("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q, want \"fallback\"", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "3s")
	if d := getEnvDuration("TEST_DURATION", 5*time.Second); d != 3*time.Second {
		t.Errorf("getEnvDuration did not parse duration correctly")
	}
	t.Setenv("TEST_DURATION", "bad")
	if d := getEnvDuration("TEST_DURATION", 7*time.Second); d != 7*time.Second {
		t.Errorf("getEnvDuration fallback not used on bad input")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if i := getEnvInt("TEST_INT", 5); i != 42 {
		t.Errorf("getEnvInt did not parse int correctly")
	}
	t.Setenv("TEST_INT", "bad")
	if i := getEnvInt("TEST_INT", 7); i != 7 {
		t.Errorf("getEnvInt fallback not used on bad input")
	}
}

func TestIsProductionEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("ENV", "")
	if isProductionEnv() {
		t.Error("isProductionEnv = true with no env set")
	}
	t.Setenv("ENV", "production")
	if !isProductionEnv() {
		t.Error("isProductionEnv = false with ENV=production")
	}
	t.Setenv("ENV", "")
	t.Setenv("GIN_MODE", "release")
	if !isProductionEnv() {
		t.Error("isProductionEnv = false with GIN_MODE=release")
	}
}

func TestNewApp_ReadsEnvironment(t *testing.T) {
	t.Setenv("SUGGESTION_LIMIT", "25")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("STATIC_CACHE_AGE", "1h")
	app := newApp(nil)
	if app.SuggestionLimit != 25 || app.RateLimitBurst != 3 || app.StaticCacheAge != time.Hour {
		t.Errorf("newApp ignored environment: %+v", app)
	}
	if app.RateLimitRPS != DefaultRateLimitRPS {
		t.Errorf("RateLimitRPS = %d, want default %d", app.RateLimitRPS, DefaultRateLimitRPS)
	}
}
