package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func newTestFileStorage(t *testing.T) *FileStorage {
	t.Helper()
	st, err := NewFileStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return st
}

func TestFileStorage_RoundTrip(t *testing.T) {
	st := newTestFileStorage(t)

	in := testState{Name: "wall", Count: 3, Tags: []string{"a", "b"}}
	st.Save("campushub.test", in)

	out := testState{Name: "fallback"}
	ok := st.Load("campushub.test", &out)

	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestFileStorage_MissingKeyKeepsFallback(t *testing.T) {
	st := newTestFileStorage(t)

	out := testState{Name: "fallback", Count: 7}
	ok := st.Load("campushub.absent", &out)

	assert.False(t, ok)
	assert.Equal(t, testState{Name: "fallback", Count: 7}, out)
}

func TestFileStorage_CorruptDocumentKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStorage(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "campushub.bad.json"), []byte("{not json"), 0o644))

	out := testState{Name: "fallback"}
	ok := st.Load("campushub.bad", &out)

	assert.False(t, ok)
	assert.Equal(t, "fallback", out.Name)
}

func TestFileStorage_Delete(t *testing.T) {
	st := newTestFileStorage(t)

	st.Save("campushub.session", testState{Name: "x"})
	st.Delete("campushub.session")

	var out testState
	assert.False(t, st.Load("campushub.session", &out))

	// Deleting an absent key is a no-op
	st.Delete("campushub.session")
}

func TestOpen_DegradesToMemoryWhenDirUnavailable(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	st := Open(filepath.Join(blocker, "nested"), zerolog.Nop())

	_, isMemory := st.(*MemoryStorage)
	assert.True(t, isMemory)

	// The degraded store still round-trips for this run
	st.Save("k", testState{Name: "mem"})
	var out testState
	require.True(t, st.Load("k", &out))
	assert.Equal(t, "mem", out.Name)
}

func TestMemoryStorage_RoundTripAndDelete(t *testing.T) {
	st := NewMemoryStorage()

	in := testState{Name: "rep", Count: 1}
	st.Save("campushub.rep_dashboard", in)

	var out testState
	require.True(t, st.Load("campushub.rep_dashboard", &out))
	assert.Equal(t, in, out)

	st.Delete("campushub.rep_dashboard")
	assert.False(t, st.Load("campushub.rep_dashboard", &out))
}
