package wav

import "errors"

var (
	ErrMalformedHeader        = errors.New("malformed WAV header")
	ErrUnsupportedCompression = errors.New("unsupported compression code")
	ErrInvalidFormat          = errors.New("invalid format parameters")
	ErrChunkOrder             = errors.New("data chunk found before format chunk")
	ErrTruncatedData          = errors.New("not enough data available")
	ErrIllegalState           = errors.New("operation not legal in current state")
	ErrInvalidSeek            = errors.New("invalid seek target")
	ErrUnsupportedOperation   = errors.New("unsupported operation")
)
