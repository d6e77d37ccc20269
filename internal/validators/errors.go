package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid object id")
	ErrInvalidObjectType  = errors.New("invalid object type")
	ErrInvalidChecksum    = errors.New("invalid data checksum")
	ErrInvalidPrevious    = errors.New("invalid previous checksum")
	ErrDataAndBlob        = errors.New("data and large data blob id are mutually exclusive")
	ErrEmptyData          = errors.New("data is required")
	ErrInvalidTimestamps  = errors.New("invalid timestamps")
	ErrInvalidPayload     = errors.New("payload must be a json document")
	ErrEmptyObjects       = errors.New("objects list cannot be empty")
	ErrTooManyObjects     = errors.New("too many objects in one request")
	ErrDuplicateID        = errors.New("duplicate object id in request")
	ErrEmptyDeleteRequest = errors.New("delete request selects nothing")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidByteSize    = errors.New("invalid byte size")
)
