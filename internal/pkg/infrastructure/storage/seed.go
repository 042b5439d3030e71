package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

// SeedAlertTypes upserts the alert type catalog from configuration. The
// catalog is immutable at runtime, so seeding runs once at startup.
func SeedAlertTypes(ctx context.Context, s *Storage, alertTypes []types.AlertType) error {
	log := logging.GetFromContext(ctx)

	for _, at := range alertTypes {
		if at.Code == "" {
			return fmt.Errorf("alert type with empty code in configuration")
		}

		parameters, err := json.Marshal(at.Parameters)
		if err != nil {
			return err
		}

		args := pgx.NamedArgs{
			"code":       at.Code,
			"message":    at.Message,
			"parameters": parameters,
		}

		_, err = s.pool.Exec(ctx, `
			INSERT INTO alert_types (code, message, parameters)
			VALUES (@code, @message, @parameters)
			ON CONFLICT (code) DO UPDATE SET message = EXCLUDED.message, parameters = EXCLUDED.parameters
		`, args)
		if err != nil {
			return err
		}
	}

	log.Debug("seeded alert types", "count", len(alertTypes))

	return nil
}
