package filestore_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"protoreq/internal/adapter/filestore"
	apperrors "protoreq/pkg/errors"
)

func setupStore(t *testing.T) (*filestore.Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return filestore.New(fs, zaptest.NewLogger(t)), fs
}

// TestWrite_CreatesFile tests that a payload lands at the requested path.
func TestWrite_CreatesFile(t *testing.T) {
	store, fs := setupStore(t)

	err := store.Write("create_user.bin", []byte{0x0A, 0x03, 'a', 'b', 'c'})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "create_user.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x03, 'a', 'b', 'c'}, data)
}

// TestWrite_OverwritesPrevious tests that re-running against the same path
// replaces the payload rather than appending to it.
func TestWrite_OverwritesPrevious(t *testing.T) {
	store, fs := setupStore(t)

	require.NoError(t, store.Write("create_user.bin", []byte("first payload")))
	require.NoError(t, store.Write("create_user.bin", []byte("second")))

	data, err := afero.ReadFile(fs, "create_user.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

// TestWrite_CreatesParentDirectories tests writing to a nested output path.
func TestWrite_CreatesParentDirectories(t *testing.T) {
	store, fs := setupStore(t)

	err := store.Write("out/requests/create_user.bin", []byte("payload"))
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "out/requests/create_user.bin")
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestRead_RoundTrip tests reading back a written payload unchanged.
func TestRead_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	payload := []byte{0x12, 0x10, 0xFF, 0x00}

	require.NoError(t, store.Write("create_user.bin", payload))

	data, err := store.Read("create_user.bin")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

// TestRead_Missing tests reading a path that was never written.
func TestRead_Missing(t *testing.T) {
	store, _ := setupStore(t)

	data, err := store.Read("missing.bin")

	assert.Nil(t, data)
	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing.bin", notFound.Resource)
}
