// Package ecc200 encodes Data Matrix (ECC200) symbols as specified by
// ISO/IEC 16022.
//
// The encoding engine lives in the reedsolomon and datamatrix/encoder
// packages; datamatrix.Writer ties them together behind the Writer interface.
package ecc200

import "errors"

var (
	// ErrUnsupportedECCSize is returned when no generator polynomial exists
	// for the requested error correction block size.
	ErrUnsupportedECCSize = errors.New("unsupported error correction block size")

	// ErrBufferTooSmall is returned when a codeword buffer cannot hold the
	// data codewords plus their interleaved error correction codewords.
	ErrBufferTooSmall = errors.New("codeword buffer too small")

	// ErrInvalidDimensions is returned for non-positive or otherwise unusable
	// sizes, such as a zero data block size or an empty placement matrix.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrCapacity is returned when a message does not fit any symbol size.
	ErrCapacity = errors.New("message exceeds symbol capacity")

	// ErrCharset is returned when a message cannot be represented in the
	// requested character set.
	ErrCharset = errors.New("unencodable character")

	// ErrWriter is returned when a barcode cannot be encoded.
	ErrWriter = errors.New("writer error")
)
