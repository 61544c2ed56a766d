package restclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// UploadForm builds a multipart form payload for file-bearing operations.
// Batch uploads use the backend's field-indexed array convention, e.g.
// request[0].Title, request[0].File.
type UploadForm struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name     string
	filename string
	content  io.Reader
}

// NewUploadForm creates an empty multipart form payload.
func NewUploadForm() *UploadForm {
	return &UploadForm{}
}

// AddField appends a plain form field.
func (f *UploadForm) AddField(name, value string) *UploadForm {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddIndexedField appends a field using the request[i].Name convention.
func (f *UploadForm) AddIndexedField(index int, name, value string) *UploadForm {
	return f.AddField(fmt.Sprintf("request[%d].%s", index, name), value)
}

// AddFile appends a file part.
func (f *UploadForm) AddFile(name, filename string, content io.Reader) *UploadForm {
	f.files = append(f.files, formFile{name: name, filename: filename, content: content})
	return f
}

// AddIndexedFile appends a file part using the request[i].Name convention.
func (f *UploadForm) AddIndexedFile(index int, name, filename string, content io.Reader) *UploadForm {
	return f.AddFile(fmt.Sprintf("request[%d].%s", index, name), filename, content)
}

// Encode writes the form into a buffer and returns the reader along with
// the multipart content type (including the boundary).
func (f *UploadForm) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := writer.CreateFormFile(file.name, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %q: %w", file.name, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", fmt.Errorf("failed to copy file content for %q: %w", file.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
