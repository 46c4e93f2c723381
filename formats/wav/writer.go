// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/utils"
)

// Encode drains src into w as 16-bit PCM WAV, keeping the sample rate and
// channel count of src. The header sizes are patched on completion, which
// is why w must be seekable.
func Encode(w io.WriteSeeker, src audio.Source) error {
	channels := src.Channels()
	if channels < 1 {
		return ErrNoChannels
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), 16, channels, formatPCM)

	size := max(src.BufSize(), 4096)
	size -= size % channels
	in := make([]float32, size)
	out := &goaudio.IntBuffer{
		Data:           make([]int, size),
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		SourceBitDepth: 16,
	}

	for {
		n, err := src.ReadSamples(in)
		if n > 0 {
			out.Data = out.Data[:n]
			for i, v := range in[:n] {
				out.Data[i] = int(utils.Float32ToInt16(v))
			}
			if werr := enc.Write(out); werr != nil {
				return fmt.Errorf("writing samples: %w", werr)
			}
			out.Data = out.Data[:cap(out.Data)]
		}

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44-byte header.
// Unlike Encode it works on plain writers, since every size is known up
// front.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrNoChannels
	}

	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunk = 8192
	buf := make([]byte, 2*min(len(samples), chunk))

	for i := 0; i < len(samples); i += chunk {
		part := samples[i:min(i+chunk, len(samples))]
		b := buf[:2*len(part)]
		for j, s := range part {
			binary.LittleEndian.PutUint16(b[2*j:], uint16(s))
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
