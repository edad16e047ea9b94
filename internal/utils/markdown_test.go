package utils

import (
	"strings"
	"testing"
)

func TestRenderDescriptionSanitizes(t *testing.T) {
	out := string(RenderDescription("hello <script>alert(1)</script> world"))
	if strings.Contains(out, "<script>") {
		t.Errorf("Expected script tags to be stripped, got %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected text content to survive, got %s", out)
	}
}

func TestRenderDescriptionMarkdown(t *testing.T) {
	out := string(RenderDescription("**bold** text"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected markdown emphasis to render, got %s", out)
	}
}

func TestRenderDescriptionEnhancesImages(t *testing.T) {
	out := string(RenderDescription("![pic](https://example.com/a.png)"))
	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("Expected lazy loading attribute on images, got %s", out)
	}
	if !strings.Contains(out, `referrerpolicy="no-referrer"`) {
		t.Errorf("Expected referrer policy on images, got %s", out)
	}
}

func TestRenderDescriptionEmpty(t *testing.T) {
	if out := RenderDescription(""); out != "" {
		t.Errorf("Expected empty output for empty input, got %s", out)
	}
}
