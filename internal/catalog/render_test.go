package catalog_test

import (
	"testing"

	"github.com/blackwell-systems/hubctl/internal/catalog"
)

func TestDecide_Image(t *testing.T) {
	d := catalog.Decide(catalog.TypeImage, "https://example.com/pic.png", false)
	if d.Kind != catalog.RenderInlineImage {
		t.Errorf("valid image URL: kind = %v", d.Kind)
	}

	d = catalog.Decide(catalog.TypeImage, "not a url", false)
	if d.Kind != catalog.RenderUnavailable || d.Message != "Image not available." {
		t.Errorf("invalid image URL: %+v", d)
	}
}

func TestDecide_PDF(t *testing.T) {
	d := catalog.Decide(catalog.TypePDF, "https://example.com/f.pdf", false)
	if d.Kind != catalog.RenderDownload {
		t.Errorf("valid pdf URL: kind = %v", d.Kind)
	}

	d = catalog.Decide(catalog.TypePDF, "", false)
	if d.Kind != catalog.RenderUnavailable || d.Message != "PDF not available." {
		t.Errorf("missing pdf URL: %+v", d)
	}
}

func TestDecide_TextLike(t *testing.T) {
	for _, typ := range []catalog.FileType{catalog.TypeCode, catalog.TypeText} {
		d := catalog.Decide(typ, "https://example.com/main.go", true)
		if d.Kind != catalog.RenderPreformatted {
			t.Errorf("%s loaded: kind = %v", typ, d.Kind)
		}

		d = catalog.Decide(typ, "https://example.com/main.go", false)
		if d.Kind != catalog.RenderLoadingText {
			t.Errorf("%s in flight: kind = %v", typ, d.Kind)
		}

		d = catalog.Decide(typ, "bogus", false)
		if d.Kind != catalog.RenderUnavailable || d.Message != "Text file not available." {
			t.Errorf("%s invalid URL: %+v", typ, d)
		}
	}
}

func TestDecide_Link(t *testing.T) {
	d := catalog.Decide(catalog.TypeLink, "https://example.com", false)
	if d.Kind != catalog.RenderOpenLink {
		t.Errorf("valid link: kind = %v", d.Kind)
	}

	d = catalog.Decide(catalog.TypeLink, "nope", false)
	if d.Kind != catalog.RenderUnavailable || d.Message != "Link not available." {
		t.Errorf("invalid link: %+v", d)
	}
}

func TestDecide_Default(t *testing.T) {
	for _, typ := range []catalog.FileType{catalog.TypeDocument, catalog.TypeOther} {
		d := catalog.Decide(typ, "https://example.com/f.zip", false)
		if d.Kind != catalog.RenderDownload {
			t.Errorf("%s valid URL: kind = %v", typ, d.Kind)
		}

		d = catalog.Decide(typ, "", false)
		if d.Kind != catalog.RenderUnavailable ||
			d.Message != "File not available for preview or download." {
			t.Errorf("%s missing URL: %+v", typ, d)
		}
	}
}

func TestDecide_Deterministic(t *testing.T) {
	a := catalog.Decide(catalog.TypeCode, "https://example.com/x", false)
	b := catalog.Decide(catalog.TypeCode, "https://example.com/x", false)
	if a != b {
		t.Errorf("same triple produced different decisions: %+v vs %+v", a, b)
	}
}

func TestNeedsContentFetch(t *testing.T) {
	if !catalog.NeedsContentFetch(catalog.TypeText, "https://example.com/a.txt") {
		t.Error("text with valid URL should need a content fetch")
	}
	if catalog.NeedsContentFetch(catalog.TypeText, "bogus") {
		t.Error("invalid URL should not trigger a content fetch")
	}
	if catalog.NeedsContentFetch(catalog.TypePDF, "https://example.com/a.pdf") {
		t.Error("pdf should not trigger a content fetch")
	}
}
