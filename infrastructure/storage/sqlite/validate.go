// ABOUTME: Key and value validation for the SQLite store
// ABOUTME: Bounds sizes and flags suspicious keys; queries stay fully parameterized

package sqlite

import (
	"errors"
	"fmt"
	"strings"
)

// Logger interface - minimal interface to avoid circular dependencies
type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

const (
	maxKeyLength   = 255
	maxValueLength = 4 * 1024 * 1024
)

var suspiciousPatterns = []string{
	"--",
	"/*",
	"*/",
	";",
	"'",
	"\"",
	"\\",
	"\n",
	"\r",
	"\t",
}

// ValidateKey validates a store key
func ValidateKey(key string, logger Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}

	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	// Parameterization makes these harmless; warn so odd callers are visible
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) && logger != nil {
			logger.Warn("Suspicious pattern detected in store key", map[string]interface{}{
				"pattern":     pattern,
				"key_length":  len(key),
				"key_preview": truncateKey(key),
			})
		}
	}

	return nil
}

// ValidateValue validates a store value
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}

	return nil
}

// truncateKey returns a safe preview of the key for logging
func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}
