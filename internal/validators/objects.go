package validators

import "github.com/MKhiriev/go-object-sync/models"

// Field name constants restrict validation to a subset of fields.
const (
	FieldID               = "id"
	FieldType             = "type"
	FieldData             = "data"
	FieldDataChecksum     = "data_checksum"
	FieldPreviousChecksum = "previous_checksum"
	FieldTimestamps       = "timestamps"
	FieldPayload          = "payload"
	FieldObjects          = "objects"
	FieldPageSize         = "page_size"
	FieldSelector         = "selector"
)

const (
	// MaxObjectsPerRequest bounds save and direct upload batches.
	MaxObjectsPerRequest = 10000
	// MaxPageSize bounds the page size of fetch requests.
	MaxPageSize = 10000

	maxIDLength       = 255
	maxTypeLength     = 64
	checksumHexLength = 64
)

func isValidID(id string) bool {
	return id != "" && len(id) <= maxIDLength
}

func isValidObjectType(t models.ObjectType) bool {
	return t != "" && len(t) <= maxTypeLength
}

func isValidChecksum(sum string) bool {
	if len(sum) != checksumHexLength {
		return false
	}
	for _, c := range sum {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
