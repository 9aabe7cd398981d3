// Package codec implements the deterministic little-endian binary wire
// format for fingerprint sets.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// recordSize is the encoded size in bytes of one Fingerprint:
// hash_value(4) + time_offset_ms(4) + anchor_freq_hz(4) + target_freq_hz(4)
// + time_delta_ms(4).
const recordSize = 20

// headerSize is the encoded size in bytes of the leading count field.
const headerSize = 4

// Encode serialises fps to the wire format: u32 count, then count
// 20-byte records. Encoding a nil or empty slice succeeds, producing a
// 4-byte buffer with count=0.
func Encode(fps []audiofp.Fingerprint) []byte {
	buf := make([]byte, headerSize+recordSize*len(fps))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(fps)))

	for i, fp := range fps {
		off := headerSize + i*recordSize
		binary.LittleEndian.PutUint32(buf[off:], fp.HashValue)
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(fp.TimeOffsetMs))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(fp.AnchorFreqHz))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(fp.TargetFreqHz))
		binary.LittleEndian.PutUint32(buf[off+16:], uint32(fp.TimeDeltaMs))
	}

	return buf
}

// Decode parses the wire format produced by Encode. It returns a
// Truncated error if buf is shorter than 4 bytes, or if the declared
// count would read past the end of buf.
func Decode(buf []byte) ([]audiofp.Fingerprint, error) {
	if len(buf) < headerSize {
		return nil, audiofp.New(audiofp.Truncated, "buffer shorter than header")
	}
	count := binary.LittleEndian.Uint32(buf[0:4])
	need := headerSize + recordSize*int(count)
	if len(buf) < need {
		return nil, audiofp.Newf(audiofp.Truncated, "declared count %d overruns buffer of length %d", count, len(buf))
	}

	fps := make([]audiofp.Fingerprint, count)
	for i := 0; i < int(count); i++ {
		off := headerSize + i*recordSize
		fps[i] = audiofp.Fingerprint{
			HashValue:    binary.LittleEndian.Uint32(buf[off:]),
			TimeOffsetMs: int32(binary.LittleEndian.Uint32(buf[off+4:])),
			AnchorFreqHz: math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:])),
			TargetFreqHz: math.Float32frombits(binary.LittleEndian.Uint32(buf[off+12:])),
			TimeDeltaMs:  int32(binary.LittleEndian.Uint32(buf[off+16:])),
		}
	}
	return fps, nil
}
