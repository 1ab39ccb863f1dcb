package catalog

import (
	"net/url"
	"strings"
)

// Resource is one entry in the Hub's resource collection.
type Resource struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags,omitempty"`
	FileType     string   `json:"file_type"`
	FileURL      string   `json:"file_url,omitempty"`
	ExternalLink string   `json:"external_link,omitempty"`
	UploadedAt   string   `json:"uploaded_at,omitempty"`
	BookmarkedBy []string `json:"bookmarked_by,omitempty"`
}

// User is the resolved identity behind the session cookie.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FileType is the canonical content type used for filtering and rendering.
// Both the upload vocabulary (pdf, txt, img, doc, code, other) and the
// server's stored vocabulary normalize into it via ParseFileType.
type FileType string

const (
	TypeImage    FileType = "image"
	TypePDF      FileType = "pdf"
	TypeCode     FileType = "code"
	TypeText     FileType = "text"
	TypeDocument FileType = "document"
	TypeLink     FileType = "link"
	TypeOther    FileType = "other"
)

// UploadFileTypes is the closed set offered by the upload form.
var UploadFileTypes = []string{"pdf", "txt", "img", "doc", "code", "other"}

// ParseFileType normalizes a declared file type token. Unknown tokens map
// to TypeOther rather than erroring: resources are not re-validated after
// fetch, so the client must render whatever the server stored.
func ParseFileType(s string) FileType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "img", "jpg", "jpeg", "png", "gif":
		return TypeImage
	case "pdf":
		return TypePDF
	case "code":
		return TypeCode
	case "text", "txt":
		return TypeText
	case "doc", "docx":
		return TypeDocument
	case "link":
		return TypeLink
	default:
		return TypeOther
	}
}

// Type returns the resource's canonical file type.
func (r *Resource) Type() FileType {
	return ParseFileType(r.FileType)
}

// CandidateURL returns the content locator: file_url wins over
// external_link when both are present.
func (r *Resource) CandidateURL() string {
	if r.FileURL != "" {
		return r.FileURL
	}
	return r.ExternalLink
}

// IsBookmarkedBy reports whether userID is in the resource's bookmark set.
func (r *Resource) IsBookmarkedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range r.BookmarkedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidURL reports whether s parses as a well-formed absolute URL.
func ValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
