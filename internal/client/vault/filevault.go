package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/blogsync/internal/common"
	"github.com/dmitrijs2005/blogsync/internal/cryptox"
	"github.com/dmitrijs2005/blogsync/internal/filex"
)

const (
	credentialFileName = "credential.sealed"
	keyFileName        = "vault.key"

	keyMaterialSize = 32
	saltSize        = 16
)

// sealedCredential is the on-disk format of the encrypted API key.
type sealedCredential struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// FileVault seals the API key with AES-256-GCM into a 0600 file. The sealing
// key is derived with argon2id from random key material held in a separate
// 0600 keyfile, so neither file alone reveals the credential. Both files live
// in the vault directory, never in the settings database.
type FileVault struct {
	dir string
}

func NewFileVault(dir string) *FileVault {
	return &FileVault{dir: dir}
}

// Save replaces any previously stored key: the old sealed file is removed
// first, then the new one is written in a single write.
func (v *FileVault) Save(ctx context.Context, apiKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := filex.EnsureDir(v.dir); err != nil {
		return fmt.Errorf("vault dir: %w", err)
	}

	material, err := v.loadOrCreateKeyMaterial()
	if err != nil {
		return fmt.Errorf("key material: %w", err)
	}
	defer common.WipeByteArray(material)

	salt := common.GenerateRandByteArray(saltSize)
	sealKey := cryptox.DeriveKey(material, salt)
	defer common.WipeByteArray(sealKey)

	ciphertext, nonce, err := cryptox.Seal([]byte(apiKey), sealKey)
	if err != nil {
		return fmt.Errorf("sealing credential: %w", err)
	}

	data, err := json.Marshal(sealedCredential{Salt: salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}

	path := v.credentialPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing previous credential: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}

// Load returns the stored API key. Anything that prevents a successful
// decrypt (missing file, corrupt JSON, keyfile rotated away) reports the
// credential as absent rather than failing.
func (v *FileVault) Load(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(v.credentialPath())
	if err != nil {
		return "", false, nil
	}

	var sealed sealedCredential
	if err := json.Unmarshal(data, &sealed); err != nil {
		return "", false, nil
	}

	material, err := os.ReadFile(v.keyPath())
	if err != nil {
		return "", false, nil
	}
	defer common.WipeByteArray(material)

	sealKey := cryptox.DeriveKey(material, sealed.Salt)
	defer common.WipeByteArray(sealKey)

	plaintext, err := cryptox.Open(sealed.Ciphertext, sealed.Nonce, sealKey)
	if err != nil {
		return "", false, nil
	}

	return string(plaintext), true, nil
}

// Clear deletes the sealed credential if present, else is a no-op.
func (v *FileVault) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(v.credentialPath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credential: %w", err)
	}
	return nil
}

func (v *FileVault) credentialPath() string {
	return filepath.Join(v.dir, credentialFileName)
}

func (v *FileVault) keyPath() string {
	return filepath.Join(v.dir, keyFileName)
}

func (v *FileVault) loadOrCreateKeyMaterial() ([]byte, error) {
	material, err := os.ReadFile(v.keyPath())
	if err == nil && len(material) == keyMaterialSize {
		return material, nil
	}

	material = common.GenerateRandByteArray(keyMaterialSize)
	if err := os.WriteFile(v.keyPath(), material, 0o600); err != nil {
		return nil, err
	}
	return material, nil
}
