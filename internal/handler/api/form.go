package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// multipartMemory is the part of a form kept in memory; larger files spill
// to temporary files.
const multipartMemory = 8 << 20

var errNotMultipart = errors.New("expected a multipart/form-data body")

// form wraps a parsed multipart request and the files opened from it.
type form struct {
	r     *http.Request
	files []multipart.File
}

func parseForm(w http.ResponseWriter, r *http.Request, maxBody int64) (*form, error) {
	if maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, errNotMultipart
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	return &form{r: r}, nil
}

// writeFormError answers 413 when the body went over the limit, 400 otherwise.
func writeFormError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
		return
	}
	WriteError(w, http.StatusBadRequest, err.Error(), err)
}

// Close releases every opened file and the temporary files of the form.
func (f *form) Close() {
	for _, file := range f.files {
		_ = file.Close()
	}
	if f.r.MultipartForm != nil {
		_ = f.r.MultipartForm.RemoveAll()
	}
}

func (f *form) has(key string) bool {
	_, ok := f.r.MultipartForm.Value[key]
	return ok
}

func (f *form) str(key string) string {
	return strings.TrimSpace(f.r.FormValue(key))
}

// optStr returns nil when the field is absent or empty.
func (f *form) optStr(key string) *string {
	v := f.str(key)
	if v == "" {
		return nil
	}
	return &v
}

func (f *form) boolean(key string) bool {
	b, _ := strconv.ParseBool(f.str(key))
	return b
}

// list decodes a JSON-encoded string array. It returns nil when the field is
// absent and an empty list when it is present but blank.
func (f *form) list(key string) ([]string, error) {
	if !f.has(key) {
		return nil, nil
	}
	raw := f.str(key)
	if raw == "" {
		return []string{}, nil
	}
	out := []string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("field %q must be a JSON array of strings", key)
	}
	return out, nil
}

// firstList returns the first of keys that was submitted.
func (f *form) firstList(keys ...string) ([]string, error) {
	for _, k := range keys {
		if f.has(k) {
			return f.list(k)
		}
	}
	return nil, nil
}

// upload opens the single file submitted under key, or returns nil.
func (f *form) upload(key string) (*port.Upload, error) {
	headers := f.r.MultipartForm.File[key]
	if len(headers) == 0 {
		return nil, nil
	}
	u, err := f.open(headers[0])
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// uploads opens every file submitted under key, in submission order.
func (f *form) uploads(key string) ([]port.Upload, error) {
	headers := f.r.MultipartForm.File[key]
	out := make([]port.Upload, 0, len(headers))
	for _, h := range headers {
		u, err := f.open(h)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *form) open(h *multipart.FileHeader) (port.Upload, error) {
	file, err := h.Open()
	if err != nil {
		return port.Upload{}, fmt.Errorf("open %q: %w", h.Filename, err)
	}
	f.files = append(f.files, file)

	ct, err := sniff(file)
	if err != nil {
		return port.Upload{}, fmt.Errorf("read %q: %w", h.Filename, err)
	}
	return port.Upload{
		Filename:    h.Filename,
		ContentType: ct,
		Size:        h.Size,
		Reader:      file,
	}, nil
}

// sniff detects the content type from the first bytes and rewinds.
func sniff(rs io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(rs, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
