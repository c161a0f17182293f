package reconcile

import "strings"

// DefaultMIMEType is used for extensions missing from the table.
const DefaultMIMEType = "image/png"

var mimeTypes = map[string]string{
	".gif":  "image/gif",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".apng": "image/apng",
	".png":  "image/png",
	".webp": "image/webp",
	".avif": "image/avif",
}

// MIMEType returns the upload MIME type for a file extension such as ".gif".
func MIMEType(ext string) string {
	if mt, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return DefaultMIMEType
}
