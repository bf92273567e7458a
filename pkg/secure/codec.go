package secure

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Codec serializes a value to JSON and seals it with AES-CBC into an opaque
// base64 envelope, and performs the inverse. The envelope format is
// base64(AES-CBC(PKCS#7(JSON(v)))) with the key and IV supplied by
// configuration at process start.
type Codec[T any] struct {
	key []byte
	iv  []byte
}

// New creates a Codec from configuration. The key must be 16, 24 or 32
// bytes (AES-128/192/256) and the IV exactly one AES block.
func New[T any](cfg Config) (*Codec[T], error) {
	key := []byte(cfg.Key)
	iv := []byte(cfg.IV)

	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKey
	}
	if len(iv) != aes.BlockSize {
		return nil, ErrInvalidIV
	}

	return &Codec[T]{key: key, iv: iv}, nil
}

// Serialize encrypts the JSON form of v into an opaque base64 string.
func (c *Codec[T]) Serialize(v T) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Deserialize decrypts an envelope produced by Serialize. Any failure —
// bad base64, wrong key, broken padding, malformed JSON — yields an error
// wrapping ErrDecodeFailed and never a partial value.
func (c *Codec[T]) Deserialize(envelope string) (T, error) {
	var v T

	ciphertext, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return v, errors.Join(ErrDecodeFailed, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return v, ErrDecodeFailed
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return v, errors.Join(ErrDecodeFailed, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, c.iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return v, errors.Join(ErrDecodeFailed, err)
	}

	if err := json.Unmarshal(plaintext, &v); err != nil {
		var zero T
		return zero, errors.Join(ErrDecodeFailed, err)
	}

	return v, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrInvalidPadding
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-padding], nil
}
