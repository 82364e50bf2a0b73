package configtoml

import (
	"encoding/base64"
	"encoding/hex"
)

// BytesDecoder turns a string configuration value into bytes.
// It reports false when the string is not in the decoder's encoding.
type BytesDecoder interface {
	DecodeBytes(s string) ([]byte, bool)
}

// BytesDecoderFunc is a function adapter for BytesDecoder interface.
type BytesDecoderFunc func(s string) ([]byte, bool)

// DecodeBytes calls f(s).
func (f BytesDecoderFunc) DecodeBytes(s string) ([]byte, bool) {
	return f(s)
}

// Base64 decodes standard, padded base64 ("bWFnaWM=" → "magic").
var Base64 BytesDecoder = BytesDecoderFunc(func(s string) ([]byte, bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
})

// Hex decodes hexadecimal strings of either case ("6d61676963" → "magic").
var Hex BytesDecoder = BytesDecoderFunc(func(s string) ([]byte, bool) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
})

// ParsingOptions configures how a snapshot converts TOML values.
// The zero value decodes bytes as base64 and treats nothing as secret.
type ParsingOptions struct {
	// BytesDecoder converts strings for bytes and byteChunkArray lookups. Default: Base64.
	BytesDecoder BytesDecoder

	// SecretsSpecifier marks flattened entries as secret. Default: SecretsNone().
	SecretsSpecifier SecretsSpecifier
}

// DefaultParsingOptions returns base64 byte decoding with no secrets.
func DefaultParsingOptions() ParsingOptions {
	return ParsingOptions{
		BytesDecoder:     Base64,
		SecretsSpecifier: SecretsNone(),
	}
}

func (o ParsingOptions) withDefaults() ParsingOptions {
	if o.BytesDecoder == nil {
		o.BytesDecoder = Base64
	}
	if o.SecretsSpecifier == nil {
		o.SecretsSpecifier = SecretsNone()
	}
	return o
}
