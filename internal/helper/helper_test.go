package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("WFU_TEST_VALUE", "from-env")

	assert.Equal(t, "from-env", ResolveEnv("ENV:WFU_TEST_VALUE"))
	assert.Equal(t, "", ResolveEnv("ENV:WFU_TEST_UNSET"))
	assert.Equal(t, "plain", ResolveEnv("plain"))
}

func TestSetDefaultStringIfEmpty(t *testing.T) {
	assert.Equal(t, "GET", SetDefaultStringIfEmpty("", "GET", "method"))
	assert.Equal(t, "HEAD", SetDefaultStringIfEmpty("HEAD", "GET", "method"))
}

func TestExpandURLEnvironment(t *testing.T) {
	t.Setenv("WFU_HOST", "db.internal")
	t.Setenv("WFU_PORT", "5432")

	out, err := ExpandURL("http://$WFU_HOST:${WFU_PORT}/health")
	require.NoError(t, err)
	assert.Equal(t, "http://db.internal:5432/health", out)
}

func TestExpandURLKeepsTokenWhenVariableIsUnset(t *testing.T) {
	t.Setenv("WFU_HOST", "db.internal")

	out, err := ExpandURL("http://$WFU_HOST/$WFU_UNSET_PATH")
	require.NoError(t, err)
	assert.Equal(t, "http://$WFU_HOST/$WFU_UNSET_PATH", out)
}

func TestExpandURLTemplate(t *testing.T) {
	t.Setenv("WFU_HOST", "api")

	out, err := ExpandURL(`http://{{ env "WFU_HOST" }}:{{ env "WFU_UNSET_PORT" | default "8080" }}/ready`)
	require.NoError(t, err)
	assert.Equal(t, "http://api:8080/ready", out)
}

func TestExpandURLTemplateError(t *testing.T) {
	_, err := ExpandURL("http://{{ nope }}/")
	assert.Error(t, err)
}

func TestExpandURLWithoutPlaceholders(t *testing.T) {
	out, err := ExpandURL("https://example.com/a?b=c")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a?b=c", out)
}
