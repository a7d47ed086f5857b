package index

// Policy decides whether a document qualifies for content indexing.
// Immutable for the process lifetime.
type Policy struct {
	extensions  map[string]struct{}
	maxFileSize int64
}

// NewPolicy creates an eligibility policy from an extension whitelist
// (extensions without the leading dot) and a size ceiling in bytes.
func NewPolicy(extensions []string, maxFileSize int64) Policy {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[e] = struct{}{}
	}
	return Policy{extensions: exts, maxFileSize: maxFileSize}
}

// Allows reports whether a document with the given extension and byte size
// is eligible for indexing.
func (p Policy) Allows(extension string, size int64) bool {
	if _, ok := p.extensions[extension]; !ok {
		return false
	}
	return size <= p.maxFileSize
}
