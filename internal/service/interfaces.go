package service

import (
	"context"

	"github.com/MKhiriev/go-object-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ObjectService is the reference object API. Every call acts on the account
// stored in ctx by the auth middleware.
type ObjectService interface {
	// Save stores each object whose previous checksum matches the stored
	// one. Rejected objects are reported in SaveResponse.Errors and never
	// prevent the rest of the batch from being saved.
	Save(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error)

	Fetch(ctx context.Context, req models.FetchRequest) (models.ObjectsPage, error)
	Checksums(ctx context.Context, req models.FetchRequest) (models.ChecksumsPage, error)
	Delete(ctx context.Context, req models.DeleteRequest) (models.DeleteResponse, error)

	// PrepareDirectUpload registers one blob per intent and returns where to
	// upload its bytes.
	PrepareDirectUpload(ctx context.Context, req models.DirectUploadRequest) (models.DirectUploadResponse, error)

	// PutBlob and GetBlob are authorised by the signed blob id alone.
	PutBlob(ctx context.Context, signedID string, data []byte) error
	GetBlob(ctx context.Context, signedID string) ([]byte, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, accountID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.BuildInfo
}

// ObjectPublisher pushes saved objects to the live subscribers of an account.
type ObjectPublisher interface {
	Publish(accountID string, objects ...models.SyncObject)
}

// ObjectServiceWrapper defines middleware composition for ObjectService.
// Implementations wrap an existing ObjectService to add behavior such as
// logging or validating.
type ObjectServiceWrapper interface {
	Wrap(ObjectService) ObjectService // returns a decorated ObjectService applying additional behavior
}
