// Package pcm decodes the engine's PCM input file format: a 4-byte header
// followed by raw interleaved samples. File-level errors (bad header) are
// reported once at construction time; afterward a worn-out or truncated
// stream just reports end-of-stream, never an error.
package pcm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header flag bits (byte 1).
const (
	FlagStereo = 1 << 2
	Flag16Bit  = 1 << 1
	FlagADPCM  = 1 << 0
)

const (
	magicByte        = 0x31
	headerSize       = 4
	requiredSampleHz = 44100
)

// DecodeError is the closed set of failures construction-time header
// parsing can report.
type DecodeError struct {
	kind       string
	sampleRate uint16
}

func (e *DecodeError) Error() string {
	switch e.kind {
	case "too_short":
		return "pcm: header too short"
	case "bad_magic":
		return "pcm: bad magic byte"
	case "bad_sample_rate":
		return fmt.Sprintf("pcm: unsupported sample rate %d", e.sampleRate)
	default:
		return "pcm: decode error"
	}
}

// ErrTooShort, ErrBadMagic and ErrBadSampleRate are sentinels: compare with
// errors.Is, not ==, since ErrBadSampleRate carries the offending rate.
var (
	ErrTooShort      = &DecodeError{kind: "too_short"}
	ErrBadMagic      = &DecodeError{kind: "bad_magic"}
	ErrBadSampleRate = &DecodeError{kind: "bad_sample_rate"}
)

// Is implements errors.Is comparison by kind, ignoring sampleRate so a
// bare ErrBadSampleRate sentinel matches any rate-specific instance.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.kind == other.kind
}

// Header is the decoded 4-byte PCM file header.
type Header struct {
	Stereo     bool
	Width16    bool
	ADPCM      bool
	SampleRate uint16
}

// Source decodes interleaved PCM samples from a blocking byte reader,
// pulling the caller-chosen number of samples per channel per call to
// ReadBlock.
type Source struct {
	r      io.Reader
	header Header
}

// Open reads and validates the 4-byte header, returning a Source
// positioned at the start of the payload. It is the only place this
// package returns an error; after construction the stream just ends.
func Open(r io.Reader) (*Source, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, ErrTooShort
	}
	if buf[0] != magicByte {
		return nil, ErrBadMagic
	}
	flags := buf[1]
	rate := binary.LittleEndian.Uint16(buf[2:4])
	if rate != requiredSampleHz {
		return nil, &DecodeError{kind: "bad_sample_rate", sampleRate: rate}
	}
	return &Source{
		r: r,
		header: Header{
			Stereo:     flags&FlagStereo != 0,
			Width16:    flags&Flag16Bit != 0,
			ADPCM:      flags&FlagADPCM != 0,
			SampleRate: rate,
		},
	}, nil
}

// Header returns the decoded file header.
func (s *Source) Header() Header {
	return s.header
}

// ReadBlock decodes one block of n samples per channel, returning float32
// samples for left (and right, if stereo) divided by 127 (8-bit) or 32767
// (16-bit); the most negative code (-128 or -32768) lands just below -1.
// ok is false on any short read (end-of-stream, never an error).
func (s *Source) ReadBlock(n int) (left []float32, right []float32, ok bool) {
	bytesPerSample := 1
	if s.header.Width16 {
		bytesPerSample = 2
	}
	channels := 1
	if s.header.Stereo {
		channels = 2
	}

	buf := make([]byte, n*channels*bytesPerSample)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, nil, false
	}

	left = make([]float32, n)
	if s.header.Stereo {
		right = make([]float32, n)
	}

	for i := 0; i < n; i++ {
		base := i * channels * bytesPerSample
		left[i] = s.decodeSample(buf[base : base+bytesPerSample])
		if s.header.Stereo {
			rbase := base + bytesPerSample
			right[i] = s.decodeSample(buf[rbase : rbase+bytesPerSample])
		}
	}
	return left, right, true
}

func (s *Source) decodeSample(b []byte) float32 {
	if s.header.Width16 {
		v := int16(binary.LittleEndian.Uint16(b))
		return float32(v) / 32767.0
	}
	v := int8(b[0])
	return float32(v) / 127.0
}
