package resolve

import (
	"net/url"
	"strings"

	"github.com/fwojciec/gitwebhl"
)

// gitweb query parameters.
const (
	actionKey   = "a"
	fileKey     = "f"
	projectKey  = "p"
	hashKey     = "h"
	hashBaseKey = "hb"

	blobAction = "blob"
)

// isFieldSeparator reports whether r separates query fields. gitweb emits
// ";" and accepts "&".
func isFieldSeparator(r rune) bool {
	return r == ';' || r == '&'
}

// fields splits a page identifier into its key=value fields.
func fields(pageIdentifier string) []string {
	return strings.FieldsFunc(strings.TrimPrefix(pageIdentifier, "?"), isFieldSeparator)
}

// lookup returns the raw value of the first field named key.
func lookup(pageIdentifier, key string) (string, bool) {
	for _, field := range fields(pageIdentifier) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// value returns the decoded value of the first field named key. Values that
// are not valid percent-encodings are returned as is.
func value(pageIdentifier, key string) (string, bool) {
	v, ok := lookup(pageIdentifier, key)
	if !ok {
		return "", false
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded, true
	}
	return v, true
}

// ParseBlobRef extracts the project, file and revision of a blob page. The
// blob must be named by a file path, a blob hash or both. Revisions and
// hashes that look like command-line options are rejected.
func ParseBlobRef(pageIdentifier string) (gitwebhl.BlobRef, bool) {
	if !IsResolvableView(pageIdentifier) {
		return gitwebhl.BlobRef{}, false
	}
	var ref gitwebhl.BlobRef
	ref.Path, _ = value(pageIdentifier, fileKey)
	ref.Hash, _ = value(pageIdentifier, hashKey)
	if ref.Path == "" && ref.Hash == "" {
		return gitwebhl.BlobRef{}, false
	}
	ref.Project, _ = value(pageIdentifier, projectKey)
	ref.Revision, _ = value(pageIdentifier, hashBaseKey)
	if strings.HasPrefix(ref.Revision, "-") || strings.HasPrefix(ref.Hash, "-") {
		return gitwebhl.BlobRef{}, false
	}
	return ref, true
}
