// SPDX-License-Identifier: EPL-2.0

package browser

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKey(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("nNp o+-q\x1b[C\x1b[D\x1b[Ax\x03"))
	want := []Key{
		KeyNext, KeyNext, KeyPrevious, KeyToggle, KeyOpen, KeyVolumeUp, KeyVolumeDown, KeyQuit,
		KeyNext, KeyPrevious, KeyVolumeUp, KeyNone, KeyQuit,
		KeyQuit, // end of input
	}

	for i, w := range want {
		k, err := ReadKey(r)
		require.NoError(t, err)
		assert.Equal(t, w, k, "key %d", i)
	}
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	var echo bytes.Buffer
	r := bufio.NewReader(strings.NewReader("/tmp/ab\x7fc.csv\rrest"))
	line, err := readLine(r, &echo)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ac.csv", line)
	assert.Contains(t, echo.String(), "/tmp/ab\b \bc.csv")

	line, err = readLine(r, &echo)
	require.NoError(t, err)
	assert.Equal(t, "rest", line)
}

func TestReadLineCancelled(t *testing.T) {
	t.Parallel()

	line, err := readLine(bufio.NewReader(strings.NewReader("abc\x1b")), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Empty(t, line)
}
