package secure

// Config carries the symmetric key material for the envelope codec.
// Both values come from external secret configuration; they are never
// embedded in source.
type Config struct {
	// Key is the AES key: 16, 24 or 32 bytes.
	Key string `env:"SECURE_CODEC_KEY,required"`

	// IV is the 16-byte CBC initialization vector.
	IV string `env:"SECURE_CODEC_IV,required"`
}
