package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"leadintake/internal/uploads"
)

// CoercionError reports a field value that could not be converted to its
// declared kind.
type CoercionError struct {
	Field string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce field %q: %v", e.Field, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// UploadFunc uploads one encoded file payload (a data URI) under a storage
// folder and returns the durable asset URL.
type UploadFunc func(ctx context.Context, dataURI, folder string) (string, error)

// Values is the flat field bag produced by Extract, keyed by field name.
// Entry types follow the field kinds: string, int, bool or []string.
type Values map[string]any

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

func (v Values) StringList(name string) []string {
	l, _ := v[name].([]string)
	return l
}

// Extract walks the schema in order and produces the coerced field bag.
//
// File fields are read fully, encoded as self-describing data URIs and handed
// to upload; the returned URL becomes the field value. An absent file is not
// an error and yields "". Scalar coercion: Int falls back to 0 on empty or
// invalid input, Bool is an exact match against "true", StringList decodes a
// JSON array (absent means empty list, malformed JSON is a CoercionError).
// Uploads are sequential and single-attempt; the first failure aborts.
func Extract(ctx context.Context, form *multipart.Form, schema Schema, upload UploadFunc) (Values, error) {
	values := make(Values, len(schema.Fields))

	for _, f := range schema.Fields {
		if f.Kind == File {
			url, err := extractFile(ctx, form, f, upload)
			if err != nil {
				return nil, err
			}
			values[f.Name] = url
			continue
		}

		raw, present := firstValue(form, f.Name)
		if f.Required && !present {
			return nil, &CoercionError{Field: f.Name, Err: fmt.Errorf("missing required field")}
		}

		switch f.Kind {
		case Text, LongText:
			values[f.Name] = raw
		case Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				n = 0
			}
			values[f.Name] = n
		case Bool:
			values[f.Name] = raw == "true"
		case StringList:
			if raw == "" {
				values[f.Name] = []string{}
				continue
			}
			var list []string
			if err := json.Unmarshal([]byte(raw), &list); err != nil {
				return nil, &CoercionError{Field: f.Name, Err: err}
			}
			values[f.Name] = list
		default:
			return nil, &CoercionError{Field: f.Name, Err: fmt.Errorf("unknown field kind %d", f.Kind)}
		}
	}

	return values, nil
}

func extractFile(ctx context.Context, form *multipart.Form, f Field, upload UploadFunc) (string, error) {
	headers := form.File[f.Name]
	if len(headers) == 0 {
		// Absence is not an error; the record keeps an empty URL.
		return "", nil
	}

	fh := headers[0]
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file field %q: %w", f.Name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file field %q: %w", f.Name, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := upload(ctx, uploads.EncodeDataURI(contentType, data), f.Folder)
	if err != nil {
		return "", fmt.Errorf("upload file field %q: %w", f.Name, err)
	}
	return url, nil
}

func firstValue(form *multipart.Form, name string) (string, bool) {
	vals, ok := form.Value[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
