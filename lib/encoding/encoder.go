// Package encoding carries dialog props through URLs and form values.
//
// Props are flattened to a field map, packed with msgpack, and then either
// signed (visible, tamper-proof) or sealed with AES-256-GCM (opaque).
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrInvalidFormat    = errors.New("encoding: invalid format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
	ErrEmptyKey         = errors.New("encoding: empty key")
)

// Mode selects how packed props are protected.
type Mode int

const (
	// Signed is base64(msgpack) + "." + truncated HMAC-SHA256.
	Signed Mode = iota
	// Encrypted is base64(nonce || AES-GCM ciphertext).
	Encrypted
)

func (m Mode) String() string {
	if m == Encrypted {
		return "encrypted"
	}
	return "signed"
}

// Fields is the flattened form of a props value.
type Fields = map[string]any

// Encodable is implemented by props that flatten themselves to Fields.
type Encodable interface {
	HXEncode() Fields
}

// Decodable is implemented by props that rebuild themselves from Fields.
type Decodable interface {
	HXDecode(Fields) error
}

const sigLen = 16

// Encoder encodes and decodes props under one key.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256. An empty key is rejected.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, fmt.Errorf("encoding: cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encoding: gcm: %w", err)
	}
	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode packs v and protects it according to mode.
func (e *Encoder) Encode(v Encodable, mode Mode) (string, error) {
	packed, err := msgpack.Marshal(v.HXEncode())
	if err != nil {
		return "", fmt.Errorf("encoding: pack: %w", err)
	}
	if mode == Encrypted {
		return e.seal(packed)
	}
	return e.sign(packed), nil
}

// Decode verifies or opens encoded according to mode and fills v.
func (e *Encoder) Decode(encoded string, mode Mode, v Decodable) error {
	var (
		packed []byte
		err    error
	)
	if mode == Encrypted {
		packed, err = e.open(encoded)
	} else {
		packed, err = e.verify(encoded)
	}
	if err != nil {
		return err
	}

	var fields Fields
	if err := msgpack.Unmarshal(packed, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return v.HXDecode(fields)
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:sigLen]
}

func (e *Encoder) sign(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(e.mac(data))
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	body, sig, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}
	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	if !hmac.Equal(got, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) seal(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encoding: nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(e.gcm.Seal(nonce, nonce, data, nil)), nil
}

func (e *Encoder) open(encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	n := e.gcm.NonceSize()
	if len(raw) < n {
		return nil, ErrInvalidFormat
	}
	data, err := e.gcm.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
