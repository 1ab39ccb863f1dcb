package catalog

// RenderKind is the content-rendering branch chosen for a resource.
type RenderKind int

const (
	// RenderUnavailable: no valid URL for the declared type.
	RenderUnavailable RenderKind = iota
	// RenderInlineImage: show the image at the URL inline.
	RenderInlineImage
	// RenderDownload: offer the URL as a download.
	RenderDownload
	// RenderPreformatted: show already-fetched raw content verbatim.
	RenderPreformatted
	// RenderLoadingText: raw content fetch is still in flight.
	RenderLoadingText
	// RenderOpenLink: offer the URL as an external link.
	RenderOpenLink
)

// Decision is the outcome of content dispatch for one resource.
type Decision struct {
	Kind RenderKind
	// URL is the candidate content locator; set for every kind except
	// Unavailable and Preformatted.
	URL string
	// Message is the user-facing fallback text for RenderUnavailable.
	Message string
}

// Decide picks the rendering branch for a declared file type, candidate
// URL, and whether text-like raw content has already been fetched. It is
// deterministic in that triple.
func Decide(t FileType, rawURL string, contentLoaded bool) Decision {
	valid := ValidURL(rawURL)
	switch t {
	case TypeImage:
		if valid {
			return Decision{Kind: RenderInlineImage, URL: rawURL}
		}
		return Decision{Kind: RenderUnavailable, Message: "Image not available."}
	case TypePDF:
		if valid {
			return Decision{Kind: RenderDownload, URL: rawURL}
		}
		return Decision{Kind: RenderUnavailable, Message: "PDF not available."}
	case TypeCode, TypeText:
		if contentLoaded {
			return Decision{Kind: RenderPreformatted}
		}
		if valid {
			return Decision{Kind: RenderLoadingText, URL: rawURL}
		}
		return Decision{Kind: RenderUnavailable, Message: "Text file not available."}
	case TypeLink:
		if valid {
			return Decision{Kind: RenderOpenLink, URL: rawURL}
		}
		return Decision{Kind: RenderUnavailable, Message: "Link not available."}
	default:
		if valid {
			return Decision{Kind: RenderDownload, URL: rawURL}
		}
		return Decision{Kind: RenderUnavailable, Message: "File not available for preview or download."}
	}
}

// NeedsContentFetch reports whether the type requires a secondary fetch
// of the raw content at url before it can be rendered inline.
func NeedsContentFetch(t FileType, rawURL string) bool {
	if t != TypeCode && t != TypeText {
		return false
	}
	return ValidURL(rawURL)
}
