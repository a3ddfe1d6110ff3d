package audiofile

import "errors"

var (
	ErrUnknownFormat = errors.New("no opener registered for format")
)
