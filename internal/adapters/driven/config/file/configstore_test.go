package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_BackendSettings(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBackendURL, "http://localhost:8000"))
	require.NoError(t, store.Set(KeyBackendAPIKey, "secret-key"))
	require.NoError(t, store.Set(KeyEmailWebhookURL, "https://hooks.example.com/send-email"))
	require.NoError(t, store.Set(KeyWatchDirectory, "/var/invoices/inbox"))

	assert.Equal(t, "http://localhost:8000", store.GetString(KeyBackendURL))
	assert.Equal(t, "secret-key", store.GetString(KeyBackendAPIKey))
	assert.Equal(t, "https://hooks.example.com/send-email", store.GetString(KeyEmailWebhookURL))
	assert.Equal(t, "/var/invoices/inbox", store.GetString(KeyWatchDirectory))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set(KeyBackendURL, "http://localhost:8000"))
	require.NoError(t, store1.Set("batch_size", 5))
	require.NoError(t, store1.Set("verbose", true))

	// A fresh instance loads from the file.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", store2.GetString(KeyBackendURL))
	assert.Equal(t, 5, store2.GetInt("batch_size"))
	assert.True(t, store2.GetBool("verbose"))
}

func TestConfigStore_DottedKeysFlattened(t *testing.T) {
	tmpDir := t.TempDir()

	// Nested TOML tables come back as dot-notation keys.
	content := []byte("[backend]\nurl = \"http://localhost:8000\"\nrequests_per_second = 2\n")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", store.GetString(KeyBackendURL))
	assert.Equal(t, 2, store.GetInt(KeyBackendRate))
}

func TestConfigStore_TypedGetters_WrongOrMissingType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("number", 42))

	assert.Equal(t, "", store.GetString("number"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("number"))
	assert.Nil(t, store.GetStringSlice("number"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetInt_Int64FromTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.mu.Lock()
	store.values["int64_key"] = int64(9999)
	store.mu.Unlock()

	assert.Equal(t, 9999, store.GetInt("int64_key"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBackendAPIKey, "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get(KeyBackendURL)
	assert.False(t, ok)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBackendURL, "http://old:8000"))
	require.NoError(t, store.Set(KeyBackendURL, "http://new:8000"))

	assert.Equal(t, "http://new:8000", store.GetString(KeyBackendURL))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
