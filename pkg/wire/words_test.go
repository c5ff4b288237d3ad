package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeWords(t *testing.T) {
	tests := []struct {
		name  string
		words []uint16
		want  []byte
	}{
		{
			name:  "empty",
			words: nil,
			want:  []byte{},
		},
		{
			name:  "single word",
			words: []uint16{0xBEEF},
			want:  []byte{0xBE, 0xEF, 0x92},
		},
		{
			name:  "warmup default pair",
			words: []uint16{400, 0},
			want:  []byte{0x01, 0x90, 0x4C, 0x00, 0x00, 0x81},
		},
		{
			name:  "three words",
			words: []uint16{0xBEEF, 0xABCD, 0x55AA},
			want:  []byte{0xBE, 0xEF, 0x92, 0xAB, 0xCD, 0x6F, 0x55, 0xAA, 0x36},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeWords(tt.words)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeWords(%v) = % X, want % X", tt.words, got, tt.want)
			}
			if len(got) != WordSize*len(tt.words) {
				t.Errorf("encoded length = %d, want %d", len(got), WordSize*len(tt.words))
			}
		})
	}
}

func TestWordsRoundTrip(t *testing.T) {
	tests := [][]uint16{
		{},
		{0},
		{0xFFFF},
		{400, 0},
		{0xBEEF, 0xABCD, 0x55AA},
		{1, 2, 3, 4, 5, 6, 7, 8},
	}

	for _, words := range tests {
		encoded := EncodeWords(words)
		decoded, err := DecodeWords(encoded, len(words))
		if err != nil {
			t.Fatalf("DecodeWords(EncodeWords(%v)) failed: %v", words, err)
		}
		if len(decoded) != len(words) {
			t.Fatalf("round trip length = %d, want %d", len(decoded), len(words))
		}
		for i := range words {
			if decoded[i] != words[i] {
				t.Errorf("round trip word %d = 0x%04X, want 0x%04X", i, decoded[i], words[i])
			}
		}
	}
}

func TestDecodeWordsChecksumMismatch(t *testing.T) {
	// Flipping any single bit of any checksum byte must be detected, and
	// nothing past the corrupted triplet may be interpreted.
	words := []uint16{0xBEEF, 0xABCD, 0x55AA}
	clean := EncodeWords(words)

	for triplet := 0; triplet < len(words); triplet++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := append([]byte(nil), clean...)
			corrupted[WordSize*triplet+2] ^= 1 << bit

			_, err := DecodeWords(corrupted, len(words))
			if !errors.Is(err, ErrChecksumMismatch) {
				t.Fatalf("triplet %d bit %d: expected ErrChecksumMismatch, got %v", triplet, bit, err)
			}

			var cerr *ChecksumError
			if !errors.As(err, &cerr) {
				t.Fatalf("triplet %d bit %d: error is not *ChecksumError: %v", triplet, bit, err)
			}
			if cerr.Index != triplet {
				t.Errorf("triplet %d bit %d: reported index %d", triplet, bit, cerr.Index)
			}
		}
	}
}

func TestDecodeWordsCorruptDataByte(t *testing.T) {
	encoded := EncodeWords([]uint16{0xBEEF})
	encoded[0] ^= 0x01

	_, err := DecodeWords(encoded, 1)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestDecodeWordsShortBuffer(t *testing.T) {
	_, err := DecodeWords([]byte{0xBE, 0xEF}, 1)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestDecodeWordsExtraBytesIgnored(t *testing.T) {
	encoded := EncodeWords([]uint16{0x1234})
	encoded = append(encoded, 0xDE, 0xAD)

	decoded, err := DecodeWords(encoded, 1)
	if err != nil {
		t.Fatalf("DecodeWords failed: %v", err)
	}
	if decoded[0] != 0x1234 {
		t.Errorf("decoded word = 0x%04X, want 0x1234", decoded[0])
	}
}

func TestToWord(t *testing.T) {
	tests := []struct {
		name    string
		v       int
		want    uint16
		wantErr bool
	}{
		{name: "zero", v: 0, want: 0},
		{name: "max", v: 0xFFFF, want: 0xFFFF},
		{name: "negative", v: -1, wantErr: true},
		{name: "overflow", v: 0x10000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToWord(tt.v)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWord) {
					t.Fatalf("expected ErrInvalidWord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToWord(%d) failed: %v", tt.v, err)
			}
			if got != tt.want {
				t.Errorf("ToWord(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}
