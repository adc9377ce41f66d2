package secret

import "encoding/base64"

// Encode produces the reversible printable form used for passwords at rest.
// It is an obfuscation for the credential files, not encryption.
func Encode(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// Decode inverts Encode. Malformed input yields an empty string rather than
// an error so that a corrupted credential line reads as "no password".
func Decode(token string) string {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ""
	}
	return string(raw)
}
