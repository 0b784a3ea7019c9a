package localstate

import (
	"context"
	"testing"

	"chaski/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func TestBlobFlags(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	flags := NewBlobFlags(bucket)

	_, ok, err := flags.Get(ctx, service.FlagSkipAuth)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, flags.Set(ctx, service.FlagSkipAuth, "true"))
	require.NoError(t, flags.Set(ctx, service.FlagSessionToken, "refresh-token"))

	value, ok, err := flags.Get(ctx, service.FlagSkipAuth)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	require.NoError(t, flags.Delete(ctx, service.FlagSkipAuth))
	require.NoError(t, flags.Delete(ctx, service.FlagSkipAuth))

	_, ok, err = flags.Get(ctx, service.FlagSkipAuth)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err = flags.Get(ctx, service.FlagSessionToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "refresh-token", value)
}

func TestBlobFlags_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	require.NoError(t, NewBlobFlags(bucket).Set(ctx, service.FlagSessionToken, "refresh-token"))
	require.NoError(t, bucket.Close())

	reopened, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := NewBlobFlags(reopened).Get(ctx, service.FlagSessionToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "refresh-token", value)
}
