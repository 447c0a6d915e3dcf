package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadintake/internal/logger"
	"leadintake/internal/model"
	"leadintake/internal/repository"
	repomocks "leadintake/internal/repository/mocks"
	uploadmocks "leadintake/internal/uploads/mocks"
)

func buildMultipart(t *testing.T, values map[string]string, files map[string][]byte) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+name+`"; filename="upload.pdf"`)
		h.Set("Content-Type", "application/pdf")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestSubmitClientInformation(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	gw.On("Upload", mock.Anything, mock.Anything, "client-information/government-id").
		Return("https://assets.example.com/lead-intake/client-information/government-id/abc.pdf", nil)

	repo := new(repomocks.MockSubmissionRepository)
	repo.On("CreateClientInformation", mock.Anything, mock.MatchedBy(func(rec *model.ClientInformationForm) bool {
		return rec.ID != "" &&
			!rec.CreatedAt.IsZero() &&
			rec.FullName == "Jane Doe" &&
			rec.Email == "jane@example.com" &&
			rec.NumberOfEmployees == 12 &&
			rec.Declaration &&
			len(rec.ServicesRequired) == 2 &&
			rec.ServicesRequired[0] == "bookkeeping" &&
			rec.GovernmentIssuedID == "https://assets.example.com/lead-intake/client-information/government-id/abc.pdf" &&
			rec.BusinessRegistrationCertificate == ""
	})).Return(&model.ClientInformationForm{}, nil)

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))

	form := buildMultipart(t, map[string]string{
		"fullName":          "Jane Doe",
		"email":             "jane@example.com",
		"numberOfEmployees": "12",
		"declaration":       "true",
		"servicesRequired":  `["bookkeeping","tax-filing"]`,
	}, map[string][]byte{
		"governmentIssuedID": []byte("id-scan"),
	})

	require.NoError(t, svc.SubmitClientInformation(context.Background(), form))
	gw.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSubmitClientInformation_AllFilesOmitted(t *testing.T) {
	gw := new(uploadmocks.MockGateway)

	repo := new(repomocks.MockSubmissionRepository)
	repo.On("CreateClientInformation", mock.Anything, mock.MatchedBy(func(rec *model.ClientInformationForm) bool {
		return rec.BusinessRegistrationCertificate == "" &&
			rec.TaxIdentificationCertificate == "" &&
			rec.FinancialStatements == "" &&
			rec.GovernmentIssuedID == ""
	})).Return(&model.ClientInformationForm{}, nil)

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))
	form := buildMultipart(t, map[string]string{"fullName": "No Files"}, nil)

	require.NoError(t, svc.SubmitClientInformation(context.Background(), form))
	gw.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSubmitClientInformation_UploadFailureSkipsPersist(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	gw.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("storage down"))

	repo := new(repomocks.MockSubmissionRepository)

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))
	form := buildMultipart(t, nil, map[string][]byte{
		"businessRegistrationCertificate": []byte("cert"),
	})

	err := svc.SubmitClientInformation(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage down")
	repo.AssertNotCalled(t, "CreateClientInformation", mock.Anything, mock.Anything)
}

func TestSubmitClientInformation_PersistFailure(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	gw.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("https://assets.example.com/lead-intake/client-information/government-id/abc.pdf", nil)

	repo := new(repomocks.MockSubmissionRepository)
	repo.On("CreateClientInformation", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))
	form := buildMultipart(t, nil, map[string][]byte{
		"governmentIssuedID": []byte("id-scan"),
	})

	err := svc.SubmitClientInformation(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist client information")
}

func TestSubmitPartnerApplication(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	gw.On("Upload", mock.Anything, mock.Anything, "partner-application/portfolio").
		Return("https://assets.example.com/lead-intake/partner-application/portfolio/abc.pdf", nil)

	repo := new(repomocks.MockSubmissionRepository)
	repo.On("CreatePartnerApplication", mock.Anything, mock.MatchedBy(func(rec *model.PartnerApplicationForm) bool {
		return rec.ID != "" &&
			rec.BusinessName == "Acme Partners" &&
			rec.YearsInOperation == 7 &&
			rec.Consent &&
			rec.PortfolioOrReferences == "https://assets.example.com/lead-intake/partner-application/portfolio/abc.pdf"
	})).Return(&model.PartnerApplicationForm{}, nil)

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))

	form := buildMultipart(t, map[string]string{
		"businessName":     "Acme Partners",
		"yearsInOperation": "7",
		"consent":          "true",
	}, map[string][]byte{
		"portfolioOrReferences": []byte("portfolio"),
	})

	require.NoError(t, svc.SubmitPartnerApplication(context.Background(), form))
	gw.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSubmitClientInformation_MalformedServicesList(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	repo := new(repomocks.MockSubmissionRepository)

	svc := NewSubmissionService(gw, repo, logger.NewTestLogger(t))
	form := buildMultipart(t, map[string]string{"servicesRequired": `["broken`}, nil)

	err := svc.SubmitClientInformation(context.Background(), form)
	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateClientInformation", mock.Anything, mock.Anything)
}

func TestListClientInformation(t *testing.T) {
	repo := new(repomocks.MockSubmissionRepository)
	repo.On("ListClientInformation", mock.Anything, repository.PageQuery{Limit: 25, Offset: 50}).
		Return(&repository.PageResult[model.ClientInformationForm]{
			Items: []model.ClientInformationForm{{ID: "a", FullName: "Jane", CreatedAt: time.Now()}},
			Total: 71,
		}, nil)

	svc := NewSubmissionService(new(uploadmocks.MockGateway), repo, nil)

	res, err := svc.ListClientInformation(context.Background(), 25, 50)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 71, res.Total)
}

func TestListPartnerApplications_DefaultsPagination(t *testing.T) {
	repo := new(repomocks.MockSubmissionRepository)
	repo.On("ListPartnerApplications", mock.Anything, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.PartnerApplicationForm]{Items: nil, Total: 0}, nil)

	svc := NewSubmissionService(new(uploadmocks.MockGateway), repo, nil)

	res, err := svc.ListPartnerApplications(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	repo.AssertExpectations(t)
}

func TestDeleteAsset(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	gw.On("Delete", mock.Anything, "client-information/government-id/abc.pdf").Return(nil)

	svc := NewSubmissionService(gw, new(repomocks.MockSubmissionRepository), logger.NewTestLogger(t))
	require.NoError(t, svc.DeleteAsset(context.Background(), "client-information/government-id/abc.pdf"))
	gw.AssertExpectations(t)
}

func TestDeleteAsset_EmptyID(t *testing.T) {
	gw := new(uploadmocks.MockGateway)
	svc := NewSubmissionService(gw, new(repomocks.MockSubmissionRepository), nil)

	err := svc.DeleteAsset(context.Background(), "")
	require.Error(t, err)
	gw.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
