package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-object-sync/internal/crypto"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

// objectCodec converts clear entities to encrypted sync objects and back.
type objectCodec struct {
	encryptor crypto.Encryptor
}

func newObjectCodec(encryptor crypto.Encryptor) *objectCodec {
	return &objectCodec{encryptor: encryptor}
}

// encode canonicalises the payload, checksums it and encrypts it.
// Deleted entities are encoded as tombstones without payload.
func (c *objectCodec) encode(entity models.Entity) (models.SyncObject, error) {
	obj := models.SyncObject{
		ID:                  entity.ID,
		Type:                entity.Type,
		PrivateKeySignature: c.encryptor.Signature(),
		CreatedAt:           entity.CreatedAt,
		UpdatedAt:           entity.UpdatedAt,
		DeletedAt:           entity.DeletedAt,
	}
	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = entity.UpdatedAt
	}
	if entity.DeletedAt != nil && len(entity.Payload) == 0 {
		obj.DataChecksum = utils.Checksum(nil)
		return obj, nil
	}

	canonical, err := utils.CanonicalJSON(entity.Payload)
	if err != nil {
		return models.SyncObject{}, fmt.Errorf("encode %s: %w", entity.ID, err)
	}

	data, err := c.encryptor.Encrypt(canonical)
	if err != nil {
		return models.SyncObject{}, fmt.Errorf("encrypt %s: %w", entity.ID, err)
	}

	obj.Data = data
	obj.DataChecksum = utils.Checksum(canonical)
	return obj, nil
}

func (c *objectCodec) encodeAll(entities []models.Entity) ([]models.SyncObject, error) {
	objects := make([]models.SyncObject, 0, len(entities))
	for _, e := range entities {
		obj, err := c.encode(e)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// decode returns the clear entity of obj. Errors are *DecodingError, wrapping
// ErrDifferentEncryptionKey when the object was encrypted with another key.
func (c *objectCodec) decode(obj models.SyncObject) (models.Entity, error) {
	entity := models.Entity{
		ID:        obj.ID,
		Type:      obj.Type,
		CreatedAt: obj.CreatedAt,
		UpdatedAt: obj.UpdatedAt,
		DeletedAt: obj.DeletedAt,
	}
	if obj.IsDeleted() && len(obj.Data) == 0 {
		return entity, nil
	}

	if obj.PrivateKeySignature != "" && obj.PrivateKeySignature != c.encryptor.Signature() {
		return models.Entity{}, &DecodingError{ID: obj.ID, Type: obj.Type, Err: ErrDifferentEncryptionKey}
	}
	if len(obj.Data) == 0 {
		return models.Entity{}, &DecodingError{ID: obj.ID, Type: obj.Type, Err: errors.New("object has no data")}
	}

	payload, err := c.encryptor.Decrypt(obj.Data)
	if err != nil {
		return models.Entity{}, &DecodingError{ID: obj.ID, Type: obj.Type, Err: err}
	}
	if sum := utils.Checksum(payload); obj.DataChecksum != "" && sum != obj.DataChecksum {
		return models.Entity{}, &DecodingError{ID: obj.ID, Type: obj.Type, Err: fmt.Errorf("checksum mismatch: got %s", sum)}
	}

	entity.Payload = payload
	return entity, nil
}
