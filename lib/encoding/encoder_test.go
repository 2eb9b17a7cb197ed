package encoding

import (
	"errors"
	"strings"
	"testing"
)

// testProps implements Encodable and Decodable for testing.
type testProps struct {
	ID      string
	Title   string
	Visible bool
}

func (p testProps) HXEncode() Fields {
	return Fields{
		"id":      p.ID,
		"title":   p.Title,
		"visible": p.Visible,
	}
}

func (p *testProps) HXDecode(m Fields) error {
	if v, ok := m["id"].(string); ok {
		p.ID = v
	}
	if v, ok := m["title"].(string); ok {
		p.Title = v
	}
	if v, ok := m["visible"].(bool); ok {
		p.Visible = v
	}
	return nil
}

func TestNewEncoder(t *testing.T) {
	// Any key length works; short keys are stretched.
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-aes!!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
	if _, err := NewEncoder(nil); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("NewEncoder(nil) error = %v, want %v", err, ErrEmptyKey)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
	}{
		{"signed", Signed},
		{"encrypted", Encrypted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder([]byte("test-key"))
			if err != nil {
				t.Fatalf("NewEncoder failed: %v", err)
			}

			original := testProps{ID: "dlg-1", Title: "Delete file?", Visible: true}
			encoded, err := enc.Encode(original, tt.mode)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if encoded == "" {
				t.Fatal("Encoded string is empty")
			}

			var decoded testProps
			if err := enc.Decode(encoded, tt.mode, &decoded); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded != original {
				t.Errorf("Decode() = %+v, want %+v", decoded, original)
			}
		})
	}
}

func TestSignedIsReadable(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	encoded, err := enc.Encode(testProps{ID: "x"}, Signed)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(encoded, ".") {
		t.Errorf("signed encoding %q has no signature separator", encoded)
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	encoded, err := enc.Encode(testProps{ID: "dlg-1", Title: "test"}, Signed)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	body, _, _ := strings.Cut(encoded, ".")
	tampered := body + ".AAAAAAAAAAAAAAAAAAAAAA"

	var decoded testProps
	err = enc.Decode(tampered, Signed, &decoded)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode() error = %v, want %v", err, ErrSignatureInvalid)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	encoded, err := enc.Encode(testProps{ID: "dlg-1"}, Encrypted)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	other, _ := NewEncoder([]byte("other-key"))
	var decoded testProps
	err = other.Decode(encoded, Encrypted, &decoded)
	if !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Decode() error = %v, want %v", err, ErrDecryptFailed)
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name    string
		encoded string
		mode    Mode
	}{
		{"missing separator", "invalidbase64withoutseparator", Signed},
		{"bad base64 body", "!!!.AAAA", Signed},
		{"short ciphertext", "AAAA", Encrypted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded testProps
			err := enc.Decode(tt.encoded, tt.mode, &decoded)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode() error = %v, want %v", err, ErrInvalidFormat)
			}
		})
	}
}

func TestDifferentKeysCannotVerify(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	encoded, err := enc1.Encode(testProps{ID: "dlg-1"}, Signed)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded testProps
	if err := enc2.Decode(encoded, Signed, &decoded); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode() with other key error = %v, want %v", err, ErrSignatureInvalid)
	}
}

func TestModeString(t *testing.T) {
	if Signed.String() != "signed" {
		t.Errorf("Signed.String() = %q", Signed.String())
	}
	if Encrypted.String() != "encrypted" {
		t.Errorf("Encrypted.String() = %q", Encrypted.String())
	}
}
