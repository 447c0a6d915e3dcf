package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_client_information_forms",
		SQL: `CREATE TABLE IF NOT EXISTS client_information_forms (
  id                                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  full_name                         TEXT        NOT NULL DEFAULT '',
  business_name                     TEXT        NOT NULL DEFAULT '',
  phone_number                      TEXT        NOT NULL DEFAULT '',
  email                             TEXT        NOT NULL DEFAULT '',
  address                           TEXT        NOT NULL DEFAULT '',
  preferred_contact_method          TEXT        NOT NULL DEFAULT '',
  business_type                     TEXT        NOT NULL DEFAULT '',
  industry_category                 TEXT        NOT NULL DEFAULT '',
  tax_identification_number         TEXT        NOT NULL DEFAULT '',
  business_registration_number      TEXT        NOT NULL DEFAULT '',
  annual_revenue_range              TEXT        NOT NULL DEFAULT '',
  number_of_employees               INTEGER     NOT NULL DEFAULT 0,
  services_required                 JSONB       NOT NULL DEFAULT '[]',
  frequency_of_service              TEXT        NOT NULL DEFAULT '',
  specific_goals_or_needs           TEXT        NOT NULL DEFAULT '',
  current_accounting_software       TEXT        NOT NULL DEFAULT '',
  preferred_communication_schedule  TEXT        NOT NULL DEFAULT '',
  bank_account_details              TEXT        NOT NULL DEFAULT '',
  credit_limit                      TEXT        NOT NULL DEFAULT '',
  billing_address                   TEXT        NOT NULL DEFAULT '',
  business_registration_certificate TEXT        NOT NULL DEFAULT '',
  tax_identification_certificate    TEXT        NOT NULL DEFAULT '',
  financial_statements              TEXT        NOT NULL DEFAULT '',
  government_issued_id              TEXT        NOT NULL DEFAULT '',
  declaration                       BOOLEAN     NOT NULL DEFAULT FALSE,
  consent                           BOOLEAN     NOT NULL DEFAULT FALSE,
  signature                         TEXT        NOT NULL DEFAULT '',
  date                              TEXT        NOT NULL DEFAULT '',
  created_at                        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_partner_application_forms",
		SQL: `CREATE TABLE IF NOT EXISTS partner_application_forms (
  id                                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  business_name                     TEXT        NOT NULL DEFAULT '',
  contact_person                    TEXT        NOT NULL DEFAULT '',
  business_address                  TEXT        NOT NULL DEFAULT '',
  phone_number                      TEXT        NOT NULL DEFAULT '',
  email                             TEXT        NOT NULL DEFAULT '',
  website                           TEXT        NOT NULL DEFAULT '',
  type_of_business                  TEXT        NOT NULL DEFAULT '',
  industry_category                 TEXT        NOT NULL DEFAULT '',
  years_in_operation                INTEGER     NOT NULL DEFAULT 0,
  business_registration_number      TEXT        NOT NULL DEFAULT '',
  tax_identification_number         TEXT        NOT NULL DEFAULT '',
  reason_for_partnership            TEXT        NOT NULL DEFAULT '',
  services_or_products_offered      TEXT        NOT NULL DEFAULT '',
  geographical_coverage             TEXT        NOT NULL DEFAULT '',
  preferred_collaboration_type      TEXT        NOT NULL DEFAULT '',
  previous_partnerships             TEXT        NOT NULL DEFAULT '',
  annual_revenue                    TEXT        NOT NULL DEFAULT '',
  business_licenses_or_permits      TEXT        NOT NULL DEFAULT '',
  insurance_coverage                TEXT        NOT NULL DEFAULT '',
  business_registration_certificate TEXT        NOT NULL DEFAULT '',
  tax_identification_certificate    TEXT        NOT NULL DEFAULT '',
  portfolio_or_references           TEXT        NOT NULL DEFAULT '',
  declaration                       BOOLEAN     NOT NULL DEFAULT FALSE,
  consent                           BOOLEAN     NOT NULL DEFAULT FALSE,
  signature                         TEXT        NOT NULL DEFAULT '',
  date                              TEXT        NOT NULL DEFAULT '',
  created_at                        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_client_information_forms_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_client_information_forms_email ON client_information_forms (email);`,
	},
	{
		Name: "create_index_client_information_forms_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_client_information_forms_created_at ON client_information_forms (created_at);`,
	},
	{
		Name: "create_index_partner_application_forms_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_partner_application_forms_email ON partner_application_forms (email);`,
	},
	{
		Name: "create_index_partner_application_forms_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_partner_application_forms_created_at ON partner_application_forms (created_at);`,
	},
}

// EnsureMigrated checks if the submission tables exist and runs migrations if they don't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.client_information_forms') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
