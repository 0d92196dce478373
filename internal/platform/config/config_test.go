package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"archlink/internal/platform/logx"
	"archlink/internal/testutil"
)

func loadWith(t *testing.T, args ...string) (Config, []string) {
	t.Helper()
	cfg, rest, err := Load(args, logx.NewSilent())
	testutil.AssertNoError(t, err, "load should succeed")
	return cfg, rest
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ARCHLINK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, rest := loadWith(t)

	testutil.AssertEqual(t, cfg.MaxResults, 10, "default result cap")
	testutil.AssertFalse(t, cfg.Quiet, "quiet off by default")
	testutil.AssertLen(t, rest, 0, "no positional args")

	archweb := cfg.Sources["archweb"]
	testutil.AssertTrue(t, archweb.Enabled, "archweb enabled by default")
	testutil.AssertEqual(t, archweb.Timeout, 10*time.Second, "default source timeout")
	testutil.AssertTrue(t, cfg.Sources["aur"].Enabled, "aur enabled by default")
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, "max_results: 25\nsources:\n  aur:\n    enabled: false\n    timeout: 30\n")
	t.Setenv("ARCHLINK_CONFIG", path)

	cfg, _ := loadWith(t)

	testutil.AssertEqual(t, cfg.MaxResults, 25, "result cap from file")
	testutil.AssertFalse(t, cfg.Sources["aur"].Enabled, "aur disabled by file")
	testutil.AssertEqual(t, cfg.Sources["aur"].Timeout, 30*time.Second, "timeout from file")
	testutil.AssertTrue(t, cfg.Sources["archweb"].Enabled, "untouched source keeps default")
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := writeConfigFile(t, "max_results: [not an int\n")
	t.Setenv("ARCHLINK_CONFIG", path)

	cfg, _ := loadWith(t)
	testutil.AssertEqual(t, cfg.MaxResults, 10, "malformed file ignored")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "max_results: 25\n")
	t.Setenv("ARCHLINK_CONFIG", path)
	t.Setenv("ARCHLINK_MAX_RESULTS", "5")
	t.Setenv("ARCHLINK_SOURCES_AUR_ENABLED", "false")

	cfg, _ := loadWith(t)

	testutil.AssertEqual(t, cfg.MaxResults, 5, "env beats file")
	testutil.AssertFalse(t, cfg.Sources["aur"].Enabled, "source toggle from env")
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("ARCHLINK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ARCHLINK_MAX_RESULTS", "5")

	cfg, rest := loadWith(t, "--max-results", "3", "--src.archweb=false", "firefox")

	testutil.AssertEqual(t, cfg.MaxResults, 3, "flag beats env")
	testutil.AssertFalse(t, cfg.Sources["archweb"].Enabled, "source toggle from flag")
	testutil.AssertLen(t, rest, 1, "positional args returned")
	testutil.AssertEqual(t, rest[0], "firefox", "query survives flag parsing")
}

func TestLoad_UnknownFlagIsAnError(t *testing.T) {
	t.Setenv("ARCHLINK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, _, err := Load([]string{"--no-such-flag"}, logx.NewSilent())
	testutil.AssertError(t, err, "unknown flag is a usage error")
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = -2
	aur := cfg.Sources["aur"]
	aur.Timeout = 0
	cfg.Sources["aur"] = aur

	normalize(&cfg)

	testutil.AssertEqual(t, cfg.MaxResults, 10, "non-positive cap resets to default")
	testutil.AssertEqual(t, cfg.Sources["aur"].Timeout, 10*time.Second, "zero timeout resets")
}

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "t", "true", "True", "TRUE", "y", "yes", "on", " true "}
	for _, v := range truthy {
		testutil.AssertTrue(t, parseBool(v), "truthy: "+v)
	}

	falsy := []string{"0", "false", "no", "off", "", "garbage"}
	for _, v := range falsy {
		testutil.AssertFalse(t, parseBool(v), "falsy: "+v)
	}
}

func TestParseInt(t *testing.T) {
	testutil.AssertEqual(t, parseInt("42", 10), 42, "valid integer")
	testutil.AssertEqual(t, parseInt("  7  ", 10), 7, "spaces trimmed")
	testutil.AssertEqual(t, parseInt("abc", 10), 10, "invalid returns default")
	testutil.AssertEqual(t, parseInt("", 10), 10, "empty returns default")
}
