package handler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"leadintake/internal/service"
)

// messageResponse is the body returned by the submission endpoints. These
// endpoints keep the flat {message} shape the public site's forms expect; one
// generic message per outcome, no field-level detail.
type messageResponse struct {
	Message string `json:"message"`
}

const (
	clientInformationSuccess  = "Client information submitted successfully"
	clientInformationFailure  = "An error occurred while submitting client information"
	partnerApplicationSuccess = "Partner application submitted successfully"
	partnerApplicationFailure = "An error occurred while submitting partner application"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal; orchestration lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.SubmissionService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/api/client-information", SubmitClientInformation(svc))
	app.Post("/api/partner-application", SubmitPartnerApplication(svc))

	app.Get("/admin/submissions/client-information", ListClientInformationSubmissions(svc))
	app.Get("/admin/submissions/partner-application", ListPartnerApplicationSubmissions(svc))
	app.Delete("/admin/assets/*", DeleteAsset(svc))
}

// HealthCheck reports DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SubmitClientInformation accepts one multipart client-information submission.
// Every failure maps to the same generic 500 body; the cause is only logged
// server-side.
func SubmitClientInformation(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: clientInformationFailure})
		}
		if err := svc.SubmitClientInformation(c.UserContext(), form); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: clientInformationFailure})
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: clientInformationSuccess})
	}
}

// SubmitPartnerApplication accepts one multipart partner-application submission.
func SubmitPartnerApplication(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: partnerApplicationFailure})
		}
		if err := svc.SubmitPartnerApplication(c.UserContext(), form); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: partnerApplicationFailure})
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: partnerApplicationSuccess})
	}
}

// ListClientInformationSubmissions lists client-information records with
// limit & offset.
func ListClientInformationSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pagination(c)
		if !ok {
			return nil
		}
		res, listErr := svc.ListClientInformation(c.UserContext(), limit, offset)
		if listErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ListPartnerApplicationSubmissions lists partner-application records with
// limit & offset.
func ListPartnerApplicationSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pagination(c)
		if !ok {
			return nil
		}
		res, listErr := svc.ListPartnerApplications(c.UserContext(), limit, offset)
		if listErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// DeleteAsset removes an uploaded asset by its ID (the object key, which may
// contain slashes, hence the wildcard route).
func DeleteAsset(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assetID := c.Params("*")
		if assetID == "" {
			return writeError(c, fiber.StatusBadRequest, "ASSET_ID_REQUIRED", "asset id is required")
		}
		if err := svc.DeleteAsset(c.UserContext(), assetID); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// pagination parses limit/offset query params. On malformed input it writes
// the error response itself and reports ok=false.
func pagination(c *fiber.Ctx) (limit, offset int, ok bool) {
	limitStr := c.Query("limit", "10")
	offsetStr := c.Query("offset", "0")

	limit, convErr := strconv.Atoi(limitStr)
	if convErr != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return 0, 0, false
	}
	offset, convErr = strconv.Atoi(offsetStr)
	if convErr != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}
