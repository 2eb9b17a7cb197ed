package hxdialog

import "errors"

// Sentinel errors for dialog configuration and transport.
var (
	ErrNotFound         = errors.New("hxdialog: resource not found")
	ErrDecryptFailed    = errors.New("hxdialog: props decryption failed")
	ErrSignatureInvalid = errors.New("hxdialog: signature verification failed")
	ErrInvalidFormat    = errors.New("hxdialog: invalid props format")

	// ErrMissingOnCancel is reported by Config.Validate when no cancel
	// callback is configured. Dismissal paths panic instead of returning it.
	ErrMissingOnCancel = errors.New("hxdialog: OnCancel is required")

	// ErrInvalidSize is reported by Config.Validate for sizes outside
	// tiny/small/large/full. Rendering never checks it.
	ErrInvalidSize = errors.New("hxdialog: unsupported size")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsConfigError checks if err came from Config.Validate.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingOnCancel) || errors.Is(err, ErrInvalidSize)
}
