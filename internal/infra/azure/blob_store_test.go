package azure

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	"fitsaga/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Azure: &config.AzureConfig{
		AccountName: "fitsagatest",
		AccountKey:  base64.StdEncoding.EncodeToString([]byte("not-a-real-account-key")),
	}}
}

func TestNewBlobStore_NotConfigured(t *testing.T) {
	store, err := NewBlobStore(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = NewBlobStore(&config.Config{Azure: &config.AzureConfig{AccountName: "only-name"}})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestBlobStore_SignedURL(t *testing.T) {
	store, err := NewBlobStore(testConfig())
	require.NoError(t, err)
	require.NotNil(t, store)

	fixedNow := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store.(*blobStore).now = func() time.Time { return fixedNow }

	signed, err := store.SignedURL("sagafitvideos", "123/intro.mp4", time.Hour)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed, "https://fitsagatest.blob.core.windows.net/sagafitvideos/123/intro.mp4?"))

	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "r", query.Get("sp"))
	assert.Equal(t, "https", query.Get("spr"))
	assert.Equal(t, "2025-05-01T13:00:00Z", query.Get("se"))
	assert.Equal(t, "2025-05-01T11:55:00Z", query.Get("st"))
	assert.NotEmpty(t, query.Get("sig"))
}
