package wire

// Checksum algorithm constants.
const (
	// ChecksumInit is the CRC-8 initial accumulator value.
	ChecksumInit = 0xFF

	// ChecksumPolynomial is the CRC-8 generator polynomial.
	ChecksumPolynomial = 0x31
)

// Checksum computes the 8-bit integrity code the sensor embeds after every
// 16-bit word. The result must match the device's own computation
// bit-for-bit or the transaction is rejected on both sides.
func Checksum(data []byte) byte {
	crc := byte(ChecksumInit)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ ChecksumPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
