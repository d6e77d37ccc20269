package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encryptor_mock.go -package=mock

// Encryptor protects object payloads before they leave the client.
// It knows nothing about the network, the database or object types.
//
// Scheme:
//
//	Key       = Argon2id(passphrase, salt)
//	Data      = nonce || AES-256-GCM(Key, payload)
//	Signature = hex(SHA-256(Key))
type Encryptor interface {
	// Encrypt seals plaintext with a fresh random nonce. The result is
	// nonce || ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns ErrDecryption when
	// the blob is too short or the authentication tag does not match.
	Decrypt(blob []byte) ([]byte, error)

	// Signature identifies the key without revealing it. Objects carrying a
	// different signature were encrypted with another key.
	Signature() string
}
