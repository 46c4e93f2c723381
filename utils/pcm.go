// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to the normalized sample range [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// FullScale returns the magnitude of the most negative integer sample for
// bitDepth, which is the divisor used to normalize integer PCM.
// Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 normalizes an integer PCM sample of bitDepth into [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Float32ToInt16 clamps x and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// 32767 keeps +1.0 from overflowing
	return int16(Clamp(x) * 32767.0)
}
