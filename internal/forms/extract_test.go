package forms

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filePart struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

// buildForm assembles a parsed multipart.Form the way the HTTP layer would
// deliver it.
func buildForm(t *testing.T, values map[string]string, files []filePart) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.name+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func noUpload(t *testing.T) UploadFunc {
	return func(ctx context.Context, dataURI, folder string) (string, error) {
		t.Fatalf("unexpected upload to folder %q", folder)
		return "", nil
	}
}

func TestExtract_ScalarCoercion(t *testing.T) {
	schema := Schema{
		FormType: "test",
		Fields: []Field{
			{Name: "text", Kind: Text},
			{Name: "count", Kind: Int},
			{Name: "agreed", Kind: Bool},
			{Name: "tags", Kind: StringList},
		},
	}

	tests := []struct {
		name   string
		values map[string]string
		check  func(t *testing.T, v Values)
	}{
		{
			name:   "all fields valid",
			values: map[string]string{"text": "hello", "count": "42", "agreed": "true", "tags": `["a","b"]`},
			check: func(t *testing.T, v Values) {
				assert.Equal(t, "hello", v.String("text"))
				assert.Equal(t, 42, v.Int("count"))
				assert.True(t, v.Bool("agreed"))
				assert.Equal(t, []string{"a", "b"}, v.StringList("tags"))
			},
		},
		{
			name:   "invalid int falls back to zero",
			values: map[string]string{"count": "not-a-number"},
			check: func(t *testing.T, v Values) {
				assert.Equal(t, 0, v.Int("count"))
			},
		},
		{
			name:   "absent int is zero",
			values: map[string]string{},
			check: func(t *testing.T, v Values) {
				assert.Equal(t, 0, v.Int("count"))
			},
		},
		{
			name:   "bool literal false is false",
			values: map[string]string{"agreed": "false"},
			check: func(t *testing.T, v Values) {
				assert.False(t, v.Bool("agreed"))
			},
		},
		{
			name:   "bool literal 1 is false",
			values: map[string]string{"agreed": "1"},
			check: func(t *testing.T, v Values) {
				assert.False(t, v.Bool("agreed"))
			},
		},
		{
			name:   "absent bool is false",
			values: map[string]string{},
			check: func(t *testing.T, v Values) {
				assert.False(t, v.Bool("agreed"))
			},
		},
		{
			name:   "absent list is empty",
			values: map[string]string{},
			check: func(t *testing.T, v Values) {
				assert.Equal(t, []string{}, v.StringList("tags"))
			},
		},
		{
			name:   "list order preserved",
			values: map[string]string{"tags": `["b","a","c"]`},
			check: func(t *testing.T, v Values) {
				assert.Equal(t, []string{"b", "a", "c"}, v.StringList("tags"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := buildForm(t, tt.values, nil)
			v, err := Extract(context.Background(), form, schema, noUpload(t))
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestExtract_MalformedListIsCoercionError(t *testing.T) {
	schema := Schema{FormType: "test", Fields: []Field{{Name: "tags", Kind: StringList}}}
	form := buildForm(t, map[string]string{"tags": `["a",`}, nil)

	_, err := Extract(context.Background(), form, schema, noUpload(t))
	require.Error(t, err)

	var cerr *CoercionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "tags", cerr.Field)
}

func TestExtract_RequiredScalarMissing(t *testing.T) {
	schema := Schema{FormType: "test", Fields: []Field{{Name: "email", Kind: Text, Required: true}}}
	form := buildForm(t, map[string]string{}, nil)

	_, err := Extract(context.Background(), form, schema, noUpload(t))
	require.Error(t, err)

	var cerr *CoercionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "email", cerr.Field)
}

func TestExtract_FileUploaded(t *testing.T) {
	schema := Schema{FormType: "test", Fields: []Field{
		{Name: "certificate", Kind: File, Folder: "test/certificate"},
	}}

	form := buildForm(t, nil, []filePart{
		{name: "certificate", filename: "cert.pdf", contentType: "application/pdf", data: []byte("pdf-bytes")},
	})

	var gotURI, gotFolder string
	upload := func(ctx context.Context, dataURI, folder string) (string, error) {
		gotURI = dataURI
		gotFolder = folder
		return "https://assets.example.com/intake/test/certificate/abc.pdf", nil
	}

	v, err := Extract(context.Background(), form, schema, upload)
	require.NoError(t, err)

	assert.Equal(t, "test/certificate", gotFolder)
	assert.True(t, strings.HasPrefix(gotURI, "data:application/pdf;base64,"))
	assert.Equal(t, "https://assets.example.com/intake/test/certificate/abc.pdf", v.String("certificate"))
}

func TestExtract_AbsentFileIsEmptyString(t *testing.T) {
	schema := Schema{FormType: "test", Fields: []Field{
		{Name: "certificate", Kind: File, Folder: "test/certificate"},
	}}
	form := buildForm(t, map[string]string{}, nil)

	v, err := Extract(context.Background(), form, schema, noUpload(t))
	require.NoError(t, err)
	assert.Equal(t, "", v.String("certificate"))
}

func TestExtract_UploadFailureAborts(t *testing.T) {
	schema := Schema{FormType: "test", Fields: []Field{
		{Name: "certificate", Kind: File, Folder: "test/certificate"},
		{Name: "text", Kind: Text},
	}}
	form := buildForm(t, map[string]string{"text": "x"}, []filePart{
		{name: "certificate", filename: "cert.pdf", contentType: "application/pdf", data: []byte("pdf")},
	})

	upload := func(ctx context.Context, dataURI, folder string) (string, error) {
		return "", errors.New("storage down")
	}

	_, err := Extract(context.Background(), form, schema, upload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage down")
}

func TestSchemas_CoverFormFields(t *testing.T) {
	// The two shipped schemas carry the full field inventory of the intake
	// forms; spot-check shape rather than enumerating everything again.
	fileFields := 0
	for _, f := range ClientInformation.Fields {
		if f.Kind == File {
			fileFields++
			assert.NotEmpty(t, f.Folder, "file field %s needs a folder", f.Name)
			assert.True(t, strings.HasPrefix(f.Folder, "client-information/"), "folder for %s", f.Name)
		}
	}
	assert.Equal(t, 4, fileFields)

	fileFields = 0
	for _, f := range PartnerApplication.Fields {
		if f.Kind == File {
			fileFields++
			assert.True(t, strings.HasPrefix(f.Folder, "partner-application/"), "folder for %s", f.Name)
		}
	}
	assert.Equal(t, 3, fileFields)
}
