package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4nd3r5on/go-inifile/store"
)

func TestBuildStructure(t *testing.T) {
	input := "; Main configuration file\n" +
		"[network]\n" +
		"host = 127.0.0.1\n" +
		"port = 8080\n" +
		"[database]\n" +
		"user = admin\n" +
		"pass = secret\n"

	st, err := store.Build([]byte(input))
	require.NoError(t, err)
	defer st.Release()

	want := []store.Section{
		{
			Name: "network",
			Entries: []store.Entry{
				{Key: "host", Value: "127.0.0.1"},
				{Key: "port", Value: "8080"},
			},
		},
		{
			Name: "database",
			Entries: []store.Entry{
				{Key: "user", Value: "admin"},
				{Key: "pass", Value: "secret"},
			},
		},
	}

	if diff := cmp.Diff(want, st.Sections()); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCountsDuplicateSections(t *testing.T) {
	input := "[s]\na=1\n[s]\nb=2\n[t]\nc=3\n"

	st, err := store.Build([]byte(input))
	require.NoError(t, err)
	defer st.Release()

	assert.Equal(t, 3, st.Len())

	total := 0
	for _, s := range st.Sections() {
		total += len(s.Entries)
	}
	assert.Equal(t, 3, total)
}

func TestBuildEmptyInput(t *testing.T) {
	st, err := store.Build(nil)
	require.ErrorIs(t, err, store.ErrEmptyInput)
	assert.Nil(t, st)
}

func TestBuildNoValidEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "comments only", input: "; one\n# two\n"},
		{name: "blank lines only", input: "\n \t \n\n"},
		{name: "invalid lines only", input: "garbage\n[unclosed\n"},
		{name: "keys without any section", input: "a=1\nb=2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := store.Build([]byte(tt.input))
			require.ErrorIs(t, err, store.ErrNoValidEntries)
			assert.Nil(t, st)
		})
	}
}

func TestBuildDropsKeysBeforeFirstSection(t *testing.T) {
	input := "orphan=1\n[s]\nkept=2\n"

	st, err := store.Build([]byte(input))
	require.NoError(t, err)
	defer st.Release()

	assert.False(t, st.KeyExists("s", "orphan"))
	assert.False(t, st.KeyExists("", "orphan"))
	assert.True(t, st.KeyExists("s", "kept"))
}

func TestBuildMalformedSection(t *testing.T) {
	// The unclosed header produces no section, so the key line after it has
	// no current section and is discarded.
	input := "[S\nk=v\n[T]\na=b\n"

	st, err := store.Build([]byte(input))
	require.NoError(t, err)
	defer st.Release()

	assert.False(t, st.SectionExists("S"))
	assert.False(t, st.KeyExists("T", "k"))
	assert.True(t, st.KeyExists("T", "a"))
	assert.Equal(t, 1, st.Len())
}

func TestBuildCommentsDoNotMutateStore(t *testing.T) {
	input := "[s]\n; k=ignored\n# also=ignored\nreal=1\n"

	st, err := store.Build([]byte(input))
	require.NoError(t, err)
	defer st.Release()

	require.Equal(t, 1, st.Len())
	assert.Len(t, st.Sections()[0].Entries, 1)
}

func TestBuildSectionOnlyStoreIsValid(t *testing.T) {
	st, err := store.Build([]byte("[empty]\n"))
	require.NoError(t, err)
	defer st.Release()

	assert.True(t, st.SectionExists("empty"))
	assert.False(t, st.KeyExists("empty", "anything"))
}

func TestReleaseIdempotent(t *testing.T) {
	st, err := store.Build([]byte("[s]\nk=v\n"))
	require.NoError(t, err)

	require.True(t, st.SectionExists("s"))

	st.Release()
	assert.False(t, st.SectionExists("s"))
	assert.False(t, st.KeyExists("s", "k"))

	// Second release is a no-op.
	st.Release()
	assert.False(t, st.SectionExists("s"))
}
