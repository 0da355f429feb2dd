package services

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// Authentication validates the shared admin secret. Some hosting platforms
// mangle env values by injecting '@' characters, so the configured secret is
// stripped of them before any comparison.
type Authentication struct {
	secret string
}

func NewAuthentication(secret string) (*Authentication, error) {
	cleaned := strings.ReplaceAll(secret, "@", "")
	if cleaned == "" {
		return nil, errors.New("admin secret is empty")
	}

	return &Authentication{cleaned}, nil
}

func (authentication *Authentication) ValidateKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(authentication.secret)) != 1 {
		return errors.New("invalid admin key")
	}
	return nil
}
