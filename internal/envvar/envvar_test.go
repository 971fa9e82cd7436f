package envvar_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/taskphotos/internal/envvar"
)

type mapProvider map[string]string

func (m mapProvider) Get(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", errors.New("missing secret")
	}

	return v, nil
}

func TestConfiguration_Get(t *testing.T) {
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("DATABASE_PASSWORD", "plain")
	t.Setenv("DATABASE_PASSWORD_SECURE", "/secret/db:password")
	t.Setenv("REDIS_HOST_SECURE", "/secret/redis:host")

	conf := envvar.New(mapProvider{"/secret/db:password": "s3cr3t"})

	val, err := conf.Get("S3_BUCKET")
	require.NoError(t, err)
	assert.Equal(t, "photos", val)

	val, err = conf.Get("DATABASE_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", val)

	_, err = conf.Get("REDIS_HOST")
	assert.Error(t, err)

	val, err = conf.GetDefault("STORE_DRIVER", "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", val)
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(filename, []byte("TASKPHOTOS_LOAD_TEST=loaded\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("TASKPHOTOS_LOAD_TEST") })

	require.NoError(t, envvar.Load(filename))
	assert.Equal(t, "loaded", os.Getenv("TASKPHOTOS_LOAD_TEST"))

	assert.NoError(t, envvar.Load(""))
	assert.Error(t, envvar.Load(filepath.Join(t.TempDir(), "missing.env")))
}
