package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"
)

var ErrAlertTypeNotFound = fmt.Errorf("alert type not found")

const renderedTimestampLayout = "2006-01-02 15:04"

// RenderMessage produces the human readable text for an alert by
// substituting {name} placeholders in the alert type's message template with
// the alert's stored parameters. Placeholders without a matching parameter
// are left verbatim.
func (svc *alertSvc) RenderMessage(ctx context.Context, alert types.Alert) (string, error) {
	alertType, err := svc.storage.GetAlertType(ctx, alert.AlertTypeCode)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrAlertTypeNotFound, alert.AlertTypeCode)
		}
		return "", err
	}

	message := alertType.Code + "-" + alertType.Message

	for name, value := range alert.Parameters {
		message = strings.ReplaceAll(message, "{"+name+"}", fmt.Sprintf("%v", value))
	}

	message = strings.ReplaceAll(message, "{packet_id}", alert.PacketID)
	message = strings.ReplaceAll(message, "{created_at}", alert.CreatedAt.Format(renderedTimestampLayout))

	collector, err := svc.storage.GetDataCollector(ctx, alert.DataCollectorID)
	if err == nil {
		message = strings.ReplaceAll(message, "{collector.name}", fmt.Sprintf("%s (ID %s)", collector.Name, collector.ID))
	}

	return message, nil
}
