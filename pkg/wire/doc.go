// Package wire implements the SGP30 byte-level encoding: the CRC-8
// integrity code and the checksummed-word codec used for every command
// parameter and response on the I2C bus.
//
// # Wire Format
//
// Every value exchanged with the sensor is a 16-bit word transmitted as
// three bytes:
//
//	┌──────────┬──────────┬───────────┐
//	│ data MSB │ data LSB │ CRC-8     │
//	└──────────┴──────────┴───────────┘
//
// The CRC-8 is computed over the two data bytes only. A response of N
// words is therefore always 3·N bytes, and a parameter list of N words
// encodes to 3·N bytes appended after the 2-byte command opcode.
//
// # Checksum Algorithm
//
// The integrity code is the Sensirion CRC-8 variant:
//   - Polynomial: 0x31
//   - Initial value: 0xFF
//   - No final XOR, no input or output reflection
//
// Reference vector: Checksum([0xBE, 0xEF]) == 0x92.
//
// # Error Handling
//
// DecodeWords verifies each triplet's checksum before interpreting it and
// stops at the first mismatch; a bad checksum is conclusive proof of a
// corrupted transaction and is never retried at this layer.
package wire
