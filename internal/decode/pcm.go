package decode

import "encoding/binary"

// FoldMono averages interleaved multi-channel samples into one channel.
// Mono input is copied through unchanged.
func FoldMono(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		out := make([]float64, len(interleaved))
		copy(out, interleaved)
		return out
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for i := range frames {
		sum := 0.0
		for ch := range channels {
			sum += interleaved[i*channels+ch]
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// pcm16Stereo converts interleaved samples to 16-bit LE stereo PCM. Channels
// beyond the first two are dropped; mono is duplicated to both sides.
func pcm16Stereo(interleaved []float64, channels int) []byte {
	if channels < 1 {
		return nil
	}

	frames := len(interleaved) / channels
	out := make([]byte, frames*4)
	for i := range frames {
		left := interleaved[i*channels]
		right := left
		if channels > 1 {
			right = interleaved[i*channels+1]
		}
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sampleToInt16(left)))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sampleToInt16(right)))
	}
	return out
}

func sampleToInt16(s float64) int16 {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	return int16(s * 32767)
}
