package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"azure": map[string]any{
			"accountName":         "",
			"thumbnailContainers": []any{},
		},
		"contracts": map[string]any{
			"publicBaseUrl": "",
		},
		"cron": map[string]any{
			"secret": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AZURE_ACCOUNTNAME", want: "azure.accountName"},
		{envKey: "AZURE_THUMBNAILCONTAINERS", want: "azure.thumbnailContainers"},
		{envKey: "CONTRACTS_PUBLICBASEURL", want: "contracts.publicBaseUrl"},
		{envKey: "CRON_SECRET", want: "cron.secret"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{Azure: &AzureConfig{AccountName: "acct"}}
	cfg.Credits.BatchSize = 5000

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 500, cfg.Credits.BatchSize)
	assert.Equal(t, DefaultThumbnailContainers, cfg.Azure.ThumbnailContainers)
	assert.Equal(t, time.Hour, cfg.Azure.SASExpiry)
	assert.Equal(t, defaultTemplatePath, cfg.Contracts.TemplatePath)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.Host)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, `"FitSAGA" <noreply@fitsaga.com>`, cfg.Email.From)
}

func TestApplyLegacyEnv_ReadsCronSecretAndAzureNames(t *testing.T) {
	t.Setenv("CRON_SECRET", "s3cret")
	t.Setenv("AZURE_STORAGE_ACCOUNT_NAME", "legacyacct")
	t.Setenv("AZURE_STORAGE_ACCOUNT_KEY", "a2V5")
	t.Setenv("AZURE_STORAGE_CONTAINER_NAME", "videos")

	cfg := &Config{}
	applyLegacyEnv(cfg)

	assert.Equal(t, "s3cret", cfg.Cron.Secret)
	if assert.NotNil(t, cfg.Azure) {
		assert.Equal(t, "legacyacct", cfg.Azure.AccountName)
		assert.Equal(t, "a2V5", cfg.Azure.AccountKey)
		assert.Equal(t, "videos", cfg.Azure.ContainerName)
	}
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable-gap",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return env[key] })

	if assert.Len(t, replicas, 2) {
		assert.Equal(t, "replica-0", replicas[0].Host)
		assert.Equal(t, "reader", replicas[0].UserName)
		assert.Equal(t, "5433", replicas[1].Port)
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "env:\n  serviceName: fitsaga-admin\nhttp:\n  port: 8080\nazure:\n  sasExpiry: 1h\n  thumbnailContainers: [a]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AZURE_SASEXPIRY", "30m")
	t.Setenv("AZURE_THUMBNAILCONTAINERS", "one,two")

	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	assert.Equal(t, "fitsaga-admin", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Azure.SASExpiry)
	assert.Equal(t, []string{"one", "two"}, cfg.Azure.ThumbnailContainers)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config", "nowhere")

	assert.ErrorContains(t, err, "config.yaml not found")
}
