package lint

import "testing"

func TestStripFrontMatter_Present(t *testing.T) {
	src := []byte("---\ntitle: Test\n---\n# Heading\n")
	prefix, content := StripFrontMatter(src)
	if string(prefix) != "---\ntitle: Test\n---\n" {
		t.Errorf("unexpected prefix: %q", prefix)
	}
	if string(content) != "# Heading\n" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestStripFrontMatter_Absent(t *testing.T) {
	src := []byte("# Heading\n")
	prefix, content := StripFrontMatter(src)
	if prefix != nil {
		t.Errorf("expected nil prefix, got %q", prefix)
	}
	if string(content) != string(src) {
		t.Errorf("expected content unchanged, got %q", content)
	}
}

func TestStripFrontMatter_Unterminated(t *testing.T) {
	src := []byte("---\ntitle: Test\n")
	prefix, content := StripFrontMatter(src)
	if prefix != nil {
		t.Errorf("expected nil prefix for unterminated block, got %q", prefix)
	}
	if string(content) != string(src) {
		t.Errorf("expected content unchanged, got %q", content)
	}
}
