package lgrep

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"filippo.io/age"
)

var (
	// ageHeader is the first line of every file in the age format.
	ageHeader = []byte("age-encryption.org/v1")

	errNoIdentity = errors.New("age-encrypted content and no identity loaded")
)

// EncryptionManager holds the age identities used to open encrypted sources
type EncryptionManager struct {
	identities []age.Identity
	mu         sync.RWMutex
}

// NewEncryptionManager creates a new encryption manager with no identities
func NewEncryptionManager() *EncryptionManager {
	return &EncryptionManager{
		identities: make([]age.Identity, 0),
	}
}

// AddIdentity adds an X25519 identity (private key) for decryption
func (em *EncryptionManager) AddIdentity(identityStr string) error {
	identity, err := age.ParseX25519Identity(identityStr)
	if err != nil {
		return fmt.Errorf("failed to parse identity: %w", err)
	}

	em.mu.Lock()
	defer em.mu.Unlock()
	em.identities = append(em.identities, identity)
	return nil
}

// AddIdentitiesFromFile loads every identity in an age identity file.
// Comments and blank lines are skipped by the age parser.
func (em *EncryptionManager) AddIdentitiesFromFile(filePath string) error {
	keyFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}

	defer func(keyFile *os.File) {
		_ = keyFile.Close()
	}(keyFile)

	identities, err := age.ParseIdentities(keyFile)
	if err != nil {
		return fmt.Errorf("failed to parse identities in %s: %w", filePath, err)
	}

	em.mu.Lock()
	defer em.mu.Unlock()
	em.identities = append(em.identities, identities...)

	return nil
}

// HasIdentities returns true if any identities are configured
func (em *EncryptionManager) HasIdentities() bool {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return len(em.identities) > 0
}

// Decrypt decrypts age content using the configured identities
func (em *EncryptionManager) Decrypt(encryptedContent []byte) ([]byte, error) {
	em.mu.RLock()
	defer em.mu.RUnlock()

	if len(em.identities) == 0 {
		return nil, errNoIdentity
	}

	decryptReader, err := age.Decrypt(bytes.NewReader(encryptedContent), em.identities...)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, decryptReader); err != nil {
		return nil, fmt.Errorf("failed to read decrypted content: %w", err)
	}

	return buf.Bytes(), nil
}

// IsAgeEncrypted checks if content is age encrypted by looking for the format header
func IsAgeEncrypted(content []byte) bool {
	return bytes.HasPrefix(content, ageHeader)
}
