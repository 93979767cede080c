package errors

import (
	"strings"
	"unicode"
)

const (
	maxNameLen = 128
	maxKeyLen  = 256
)

// ValidateName validates a dataset or selection name.
//
// Names are identifiers chosen by the user on the command line or in a
// dataset file, so the rules are conservative:
//   - No empty names
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}
	if len(name) > maxNameLen {
		return New(ErrCodeInvalidDataset, "dataset name too long (max %d characters)", maxNameLen)
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidDataset, "dataset name %q has surrounding whitespace", name)
	}
	if hasControl(name) {
		return New(ErrCodeInvalidDataset, "dataset name contains invalid control characters")
	}
	return nil
}

// ValidateKey validates a record key. Empty keys are allowed (they are a
// valid, if unusual, category) but control characters are not because keys
// are rendered verbatim as axis labels and tooltip text.
func ValidateKey(key string) error {
	if len(key) > maxKeyLen {
		return New(ErrCodeInvalidDataset, "record key too long (max %d characters)", maxKeyLen)
	}
	if hasControl(key) {
		return New(ErrCodeInvalidDataset, "record key %q contains control characters", key)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
