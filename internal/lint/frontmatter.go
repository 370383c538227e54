package lint

import "bytes"

var frontMatterDelim = []byte("---\n")

// StripFrontMatter removes a leading YAML front matter block delimited by
// "---" lines. It returns the block (including delimiters) and the
// remaining content. When no front matter is present, prefix is nil and
// content equals source. Callers reporting positions against the original
// file must offset lines by the prefix's line count.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	if !bytes.HasPrefix(source, frontMatterDelim) {
		return nil, source
	}
	rest := source[len(frontMatterDelim):]
	idx := bytes.Index(rest, frontMatterDelim)
	if idx < 0 {
		return nil, source
	}
	end := len(frontMatterDelim) + idx + len(frontMatterDelim)
	return source[:end], source[end:]
}
