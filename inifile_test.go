package inifile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inifile "github.com/4nd3r5on/go-inifile"
	"github.com/4nd3r5on/go-inifile/common"
	"github.com/4nd3r5on/go-inifile/store"
)

func writeTempINI(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeTempINI(t, "[network]\nhost=localhost\nport=8080\n")

	st, err := inifile.Load(path)
	require.NoError(t, err)
	defer st.Release()

	v, found := st.Value("network", "host")
	require.True(t, found)
	assert.Equal(t, "localhost", v)
}

func TestLoadMissingFile(t *testing.T) {
	st, err := inifile.Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
	assert.Nil(t, st)
}

func TestLoadBuildFailure(t *testing.T) {
	path := writeTempINI(t, "; comments only\n")

	_, err := inifile.Load(path)
	require.ErrorIs(t, err, store.ErrNoValidEntries)
}

func TestDispatchFile(t *testing.T) {
	path := writeTempINI(t, "; c\n[S]\nk=v\ninvalid\n")

	counts := map[common.EventType]int{}
	ok, err := inifile.DispatchFile(path, func(e common.Event) bool {
		counts[e.Type]++
		return true
	})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1, counts[common.EventComment])
	assert.Equal(t, 1, counts[common.EventSection])
	assert.Equal(t, 1, counts[common.EventKeyValue])
	assert.Equal(t, 1, counts[common.EventError])
}

func TestDispatchFileMissing(t *testing.T) {
	ok, err := inifile.DispatchFile(filepath.Join(t.TempDir(), "missing.ini"), func(common.Event) bool {
		return true
	})
	require.Error(t, err)
	assert.False(t, ok)
}
