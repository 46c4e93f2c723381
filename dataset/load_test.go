// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audset/annotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestLoadDropsMissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	c := filepath.Join(dir, "c.wav")
	writeFile(t, a, "x")
	writeFile(t, c, "x")

	csvPath := filepath.Join(dir, "annotation.csv")
	writeFile(t, csvPath, strings.Join([]string{
		"absolute_path,duration_sec",
		a + ",65.4",
		filepath.Join(dir, "b.wav") + ",3",
		c + ",",
	}, "\n")+"\n")

	x, err := Load(csvPath)
	require.NoError(t, err)
	require.Equal(t, 2, x.Len())

	assert.Equal(t, []Entry{
		{Path: a, Name: "a.wav", Duration: "01:05"},
		{Path: c, Name: "c.wav", Duration: UnknownDuration},
	}, x.Entries())

	it := NewIterator(x)
	e, _ := it.Next()
	assert.Equal(t, "a.wav", e.Name)
	e, _ = it.Next()
	assert.Equal(t, "c.wav", e.Name)
	e, _ = it.Next()
	assert.Equal(t, "a.wav", e.Name)
}

func TestLoadFirstColumnAndNoDurations(t *testing.T) {
	t.Parallel()

	csvPath := filepath.Join(t.TempDir(), "annotation.csv")
	writeFile(t, csvPath, "file,label\n/x/one.wav,a\n/x/two.wav,b\n")

	x, err := Load(csvPath, WithExists(func(string) bool { return true }))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Path: "/x/one.wav", Name: "one.wav", Duration: UnknownDuration},
		{Path: "/x/two.wav", Name: "two.wav", Duration: UnknownDuration},
	}, x.Entries())
}

func TestLoadDurationValues(t *testing.T) {
	t.Parallel()

	csvPath := filepath.Join(t.TempDir(), "annotation.csv")
	writeFile(t, csvPath, "absolute_path,duration_sec\n/a,0\n/b,-1\n/c,nan\n/d,abc\n/e,125.5\n")

	x, err := Load(csvPath, WithExists(func(string) bool { return true }))
	require.NoError(t, err)

	var got []string
	for _, e := range x.Entries() {
		got = append(got, e.Duration)
	}
	assert.Equal(t, []string{"00:00", "---", "---", "---", "02:06"}, got)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	writeFile(t, empty, "")
	allMissing := filepath.Join(dir, "missing.csv")
	writeFile(t, allMissing, "absolute_path\n"+filepath.Join(dir, "nope.wav")+"\n")
	headerOnly := filepath.Join(dir, "header.csv")
	writeFile(t, headerOnly, "absolute_path,duration_sec\n")
	broken := filepath.Join(dir, "broken.csv")
	writeFile(t, broken, "absolute_path\n\"/unterminated\n")

	tests := []struct {
		name string
		path string
		want error
	}{
		{"source missing", filepath.Join(dir, "absent.csv"), ErrNotFound},
		{"empty", empty, ErrInvalid},
		{"all files missing", allMissing, ErrInvalid},
		{"header only", headerOnly, ErrInvalid},
		{"parse failure", broken, ErrIO},
		{"directory", dir, ErrIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, err := Load(tt.path)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, x)
		})
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wav := filepath.Join(dir, "caf\xe9.wav")
	writeFile(t, wav, "")
	src := filepath.Join(dir, "latin1.csv")
	writeFile(t, src, "absolute_path\n"+wav+"\n")

	x, err := Load(src)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, annotation.ErrEncoding)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Nil(t, x)
}
