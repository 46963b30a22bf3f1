// Package audio synthesizes short sound effects as raw PCM streams.
//
// Streams are 16-bit signed little-endian stereo, the format expected by
// Ebitengine's audio.Context.NewPlayer.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	bytesPerFrame = 4 // 2 channels * 16 bits
	toneAmplitude = 0.3
)

// Tone is an in-memory PCM stream that implements io.ReadSeeker.
type Tone struct {
	data       []byte
	sampleRate int
	offset     int64
}

// NewShootTone synthesizes a short "pew": a sine sweep that falls from
// frequency to half of it while the volume decays linearly to silence.
//
// Parameters:
//   - sampleRate: Output sample rate in Hz
//   - frequency: Start frequency in Hz
//   - duration: Length of the effect
//
// Returns:
//   - *Tone: Stream positioned at the start
//   - error: If any parameter is not positive
func NewShootTone(sampleRate int, frequency float64, duration time.Duration) (*Tone, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("frequency must be positive, got %f", frequency)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", duration)
	}

	frames := int(duration.Seconds() * float64(sampleRate))
	if frames == 0 {
		frames = 1
	}
	data := make([]byte, frames*bytesPerFrame)

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := frequency * (1 - 0.5*progress)
		envelope := 1 - progress

		sample := int16(math.Sin(phase) * envelope * toneAmplitude * math.MaxInt16)
		binary.LittleEndian.PutUint16(data[i*bytesPerFrame:], uint16(sample))
		binary.LittleEndian.PutUint16(data[i*bytesPerFrame+2:], uint16(sample))

		phase += 2 * math.Pi * freq / float64(sampleRate)
	}

	return &Tone{data: data, sampleRate: sampleRate}, nil
}

// Read reads PCM bytes into p.
// Implements io.Reader interface.
func (t *Tone) Read(p []byte) (n int, err error) {
	if t.offset >= int64(len(t.data)) {
		return 0, io.EOF
	}

	n = copy(p, t.data[t.offset:])
	t.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (t *Tone) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = t.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(t.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	t.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the stream in bytes.
func (t *Tone) Length() int64 {
	return int64(len(t.data))
}

// SampleRate returns the sample rate in Hz.
func (t *Tone) SampleRate() int {
	return t.sampleRate
}

// Bytes returns the raw PCM data.
func (t *Tone) Bytes() []byte {
	return t.data
}
