package uploads

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encoded file payloads travel between the form pipeline and the gateway as
// self-describing data URIs: data:<mime>;base64,<payload>.

const (
	dataURIPrefix = "data:"
	base64Marker  = ";base64,"
)

// EncodeDataURI encodes raw bytes as a base64 data URI with the given MIME type.
func EncodeDataURI(contentType string, data []byte) string {
	return dataURIPrefix + contentType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits a base64 data URI into its MIME type and decoded bytes.
func ParseDataURI(s string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(s, dataURIPrefix) {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := s[len(dataURIPrefix):]

	idx := strings.Index(rest, base64Marker)
	if idx < 0 {
		return "", nil, fmt.Errorf("missing base64 marker")
	}

	contentType = rest[:idx]
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err = base64.StdEncoding.DecodeString(rest[idx+len(base64Marker):])
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	return contentType, data, nil
}
