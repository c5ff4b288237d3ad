// Package command defines the fixed SGP30 command set.
//
// Each command is identified by a Command value from a closed enumeration
// and described by an immutable Descriptor carrying its 2-byte opcode, the
// feature set the device firmware must report for the command to be usable,
// its parameter and response word counts, and the minimum settle time the
// device needs between receiving the command and serving the response.
//
// The table is static configuration reproduced from the device datasheet;
// it is populated once at process start and never mutated. Looking up a
// Command value outside the enumeration is a programming error, reported
// as ErrUnknownCommand and not meant to be caught and retried.
package command
