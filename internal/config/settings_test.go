package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mittwald/waitforurl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

func TestFromEnvWithoutConfigReturnsDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	s, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTimeout, s.InitialTimeout())
	assert.Equal(t, "GET", s.Method)
	assert.Equal(t, "warn", s.LogLevel)
	assert.True(t, s.ShouldFollowRedirects())
	assert.Empty(t, s.Report)
}

func TestLoadParsesSettings(t *testing.T) {
	t.Setenv("WFU_TOKEN", "secret")

	dir := t.TempDir()
	p := writeFile(t, dir, "wait.hcl", `
timeout = 0
logLevel = "debug"
method = "head"
userAgent = "deploy-gate"
insecureSkipVerify = true
followRedirects = false
report = "/tmp/report.json"

headers {
  "Authorization" = "ENV:WFU_TOKEN"
  "X-Env" = "staging"
}
`)

	s, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, 0, s.InitialTimeout())
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "HEAD", s.Method)
	assert.Equal(t, "deploy-gate", s.UserAgent)
	assert.True(t, s.InsecureSkipVerify)
	assert.False(t, s.ShouldFollowRedirects())
	assert.Equal(t, "/tmp/report.json", s.Report)
	assert.Equal(t, map[string]string{"Authorization": "secret", "X-Env": "staging"}, s.Headers)
}

func TestLoadDirectoryAppliesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10-base.hcl", `timeout = 60
userAgent = "base"`)
	writeFile(t, dir, "20-override.hcl", `timeout = 30`)
	writeFile(t, dir, "README.md", `not hcl`)

	s, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 30, s.InitialTimeout())
	assert.Equal(t, "base", s.UserAgent)
}

func TestFromEnvUsesConfigPath(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "wait.hcl", `timeout = 12`)
	t.Setenv(config.EnvConfigPath, p)

	s, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 12, s.InitialTimeout())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorContains(t, err, "could not load configuration")

	broken := writeFile(t, dir, "broken.hcl", `timeout = [`)
	_, err = config.Load(broken)
	assert.ErrorContains(t, err, "could not parse configuration file "+broken)

	_, err = config.Load(writeFile(t, dir, "huge.hcl", `timeout = 9999999999`))
	assert.ErrorContains(t, err, "timeout 9999999999 is out of range")

	_, err = config.Load(writeFile(t, dir, "method.hcl", `method = "POST"`))
	assert.ErrorContains(t, err, "unsupported request method")

	_, err = config.Load(writeFile(t, dir, "level.hcl", `logLevel = "chatty"`))
	assert.Error(t, err)

	_, err = config.Load(t.TempDir())
	assert.ErrorContains(t, err, "could not find any configuration files")
}

func TestLoadDirectoryWithTrailingSlash(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wait.hcl", `timeout = 7`)

	s, err := config.Load(dir + "//")
	require.NoError(t, err)
	assert.Equal(t, 7, s.InitialTimeout())
}
