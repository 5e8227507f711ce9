// Package io provides the byte channels a bft interpreter performs its
// input and output through.
package io

// Channel is the byte source and sink injected into an interpreter.
type Channel interface {
	// Receive reads the next input byte. ok is false at end of input.
	Receive() (value byte, ok bool, err error)
	// Send writes a single output byte.
	Send(value byte) error
}
