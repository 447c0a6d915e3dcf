package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadintake/internal/model"
	"leadintake/internal/service"
	"leadintake/internal/service/mocks"
)

func newTestApp(svc service.SubmissionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, svc)
	return app
}

func multipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, res *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body.Message
}

func TestSubmitClientInformationHandler(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitClientInformation", mock.Anything, mock.Anything).Return(nil)

	app := newTestApp(svc)
	req := multipartRequest(t, "/api/client-information", map[string]string{"fullName": "Jane"})

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	assert.Equal(t, "Client information submitted successfully", decodeMessage(t, res))
	svc.AssertExpectations(t)
}

func TestSubmitClientInformationHandler_ServiceError(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitClientInformation", mock.Anything, mock.Anything).
		Return(errors.New("boom"))

	app := newTestApp(svc)
	req := multipartRequest(t, "/api/client-information", map[string]string{"fullName": "Jane"})

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "An error occurred while submitting client information", decodeMessage(t, res))
}

func TestSubmitClientInformationHandler_NotMultipart(t *testing.T) {
	svc := new(mocks.MockSubmissionService)

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/client-information", bytes.NewBufferString(`{"fullName":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "An error occurred while submitting client information", decodeMessage(t, res))
	svc.AssertNotCalled(t, "SubmitClientInformation", mock.Anything, mock.Anything)
}

func TestSubmitPartnerApplicationHandler(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitPartnerApplication", mock.Anything, mock.Anything).Return(nil)

	app := newTestApp(svc)
	req := multipartRequest(t, "/api/partner-application", map[string]string{"businessName": "Acme"})

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	assert.Equal(t, "Partner application submitted successfully", decodeMessage(t, res))
}

func TestSubmitPartnerApplicationHandler_ServiceError(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitPartnerApplication", mock.Anything, mock.Anything).
		Return(errors.New("boom"))

	app := newTestApp(svc)
	req := multipartRequest(t, "/api/partner-application", map[string]string{"businessName": "Acme"})

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "An error occurred while submitting partner application", decodeMessage(t, res))
}

func TestListClientInformationSubmissionsHandler(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("ListClientInformation", mock.Anything, 5, 10).
		Return(&service.ClientInformationListResult{
			Items: []model.ClientInformationForm{{ID: "a", FullName: "Jane"}},
			Total: 42,
		}, nil)

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/client-information?limit=5&offset=10", nil)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Data  []model.ClientInformationForm `json:"data"`
		Total int                           `json:"total"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 42, body.Total)
	svc.AssertExpectations(t)
}

func TestListClientInformationSubmissionsHandler_InvalidLimit(t *testing.T) {
	svc := new(mocks.MockSubmissionService)

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/client-information?limit=abc", nil)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	svc.AssertNotCalled(t, "ListClientInformation", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPartnerApplicationSubmissionsHandler_ServiceError(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("ListPartnerApplications", mock.Anything, 10, 0).
		Return(nil, errors.New("db down"))

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/partner-application", nil)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}

func TestDeleteAssetHandler(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("DeleteAsset", mock.Anything, "client-information/government-id/abc.pdf").Return(nil)

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodDelete, "/admin/assets/client-information/government-id/abc.pdf", nil)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	svc.AssertExpectations(t)
}

func TestDeleteAssetHandler_ServiceError(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("DeleteAsset", mock.Anything, "missing.pdf").Return(errors.New("no such key"))

	app := newTestApp(svc)
	req := httptest.NewRequest(http.MethodDelete, "/admin/assets/missing.pdf", nil)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}

func TestHealthCheckHandler(t *testing.T) {
	db, dbmock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	dbmock.ExpectPing()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"status":"healthy"}`, string(raw))
	require.NoError(t, dbmock.ExpectationsWereMet())
}

func TestHealthCheckHandler_DBDown(t *testing.T) {
	db, dbmock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	dbmock.ExpectPing().WillReturnError(errors.New("connection refused"))

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, res.StatusCode)
}

func TestLivenessProbeHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestErrorHandler_NotFound(t *testing.T) {
	app := newTestApp(new(mocks.MockSubmissionService))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}
