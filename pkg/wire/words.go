package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WordSize is the on-wire size of one checksummed word:
// two big-endian data bytes followed by one CRC-8 byte.
const WordSize = 3

// Codec errors.
var (
	// ErrChecksumMismatch indicates a word's embedded checksum disagrees
	// with the recomputed value. This is conclusive transaction corruption;
	// callers must not retry at this layer.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidWord indicates a value outside the 16-bit range was passed
	// to EncodeWords.
	ErrInvalidWord = errors.New("value does not fit in 16 bits")

	// ErrShortBuffer indicates the buffer is too small for the requested
	// word count.
	ErrShortBuffer = errors.New("buffer too short for word count")
)

// ChecksumError reports the first corrupted triplet found while decoding.
type ChecksumError struct {
	// Index is the zero-based triplet index within the decoded buffer.
	Index int

	// Want is the checksum byte supplied by the device.
	Want byte

	// Got is the checksum recomputed over the two data bytes.
	Got byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch at word %d: device sent 0x%02X, computed 0x%02X", e.Index, e.Want, e.Got)
}

// Unwrap allows errors.Is(err, ErrChecksumMismatch).
func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// ToWord converts an externally supplied integer to a wire word, rejecting
// values that do not fit in 16 bits. Within the protocol stack the uint16
// type already enforces the range; this is for flag and user input.
func ToWord(v int) (uint16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWord, v)
	}
	return uint16(v), nil
}

// EncodeWords encodes each 16-bit word as two big-endian data bytes
// followed by their CRC-8. The result is always WordSize*len(words) bytes.
func EncodeWords(words []uint16) []byte {
	out := make([]byte, 0, WordSize*len(words))
	var wb [2]byte
	for _, w := range words {
		binary.BigEndian.PutUint16(wb[:], w)
		out = append(out, wb[0], wb[1], Checksum(wb[:]))
	}
	return out
}

// DecodeWords verifies and decodes count checksummed words from data.
//
// Each triplet's checksum is recomputed and compared before the word is
// interpreted; on the first mismatch decoding stops and a *ChecksumError
// identifying the triplet is returned. No correction or retry is attempted.
func DecodeWords(data []byte, count int) ([]uint16, error) {
	if len(data) < WordSize*count {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(data), WordSize*count)
	}

	words := make([]uint16, 0, count)
	for i := 0; i < count; i++ {
		triplet := data[WordSize*i : WordSize*(i+1)]
		if got := Checksum(triplet[:2]); got != triplet[2] {
			return nil, &ChecksumError{Index: i, Want: triplet[2], Got: got}
		}
		words = append(words, binary.BigEndian.Uint16(triplet[:2]))
	}
	return words, nil
}
