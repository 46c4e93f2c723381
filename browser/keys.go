// SPDX-License-Identifier: EPL-2.0

package browser

import (
	"bufio"
	"errors"
	"io"
)

// Key is a browser command decoded from terminal input.
type Key int

const (
	KeyNone Key = iota
	KeyNext
	KeyPrevious
	KeyToggle
	KeyOpen
	KeyVolumeUp
	KeyVolumeDown
	KeyQuit
)

const (
	ctrlC  = 0x03
	ctrlD  = 0x04
	escape = 0x1b
)

// ReadKey reads one key press from r. Arrow keys arrive as ANSI escape
// sequences. End of input reads as KeyQuit.
func ReadKey(r *bufio.Reader) (Key, error) {
	c, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		return KeyQuit, nil
	}
	if err != nil {
		return KeyNone, err
	}

	switch c {
	case 'n', 'N':
		return KeyNext, nil
	case 'p', 'P':
		return KeyPrevious, nil
	case ' ':
		return KeyToggle, nil
	case 'o', 'O':
		return KeyOpen, nil
	case '+', '=':
		return KeyVolumeUp, nil
	case '-', '_':
		return KeyVolumeDown, nil
	case 'q', 'Q', ctrlC, ctrlD:
		return KeyQuit, nil
	case escape:
		return readEscape(r)
	}

	return KeyNone, nil
}

func readEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return KeyNone, nil
	}
	if b, err := r.ReadByte(); err != nil || b != '[' {
		return KeyNone, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return KeyNone, nil
	}

	switch b {
	case 'C':
		return KeyNext, nil
	case 'D':
		return KeyPrevious, nil
	case 'A':
		return KeyVolumeUp, nil
	case 'B':
		return KeyVolumeDown, nil
	}
	return KeyNone, nil
}

// readLine reads a line echoing it to w, for use while the terminal is
// in raw mode.
func readLine(r *bufio.Reader, w io.Writer) (string, error) {
	var line []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		switch c {
		case '\r', '\n':
			io.WriteString(w, "\r\n")
			return string(line), nil
		case ctrlC, escape:
			io.WriteString(w, "\r\n")
			return "", nil
		case 0x7f, 0x08:
			if len(line) > 0 {
				line = line[:len(line)-1]
				io.WriteString(w, "\b \b")
			}
		default:
			line = append(line, c)
			w.Write([]byte{c})
		}
	}
}
