package api

import "encoding/base64"

// MetadataFile is the upload envelope for binary metadata values. The server
// recognizes the "file" type marker and serves the content back at the
// metadata path.
type MetadataFile struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// NewMetadataFile base64-encodes content into an uploadable metadata value.
func NewMetadataFile(filename string, content []byte) *MetadataFile {
	return &MetadataFile{
		Type:     "file",
		Filename: filename,
		Data:     base64.StdEncoding.EncodeToString(content),
	}
}

// Content decodes the base64 payload of a downloaded metadata file.
func (f *MetadataFile) Content() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.Data)
}
