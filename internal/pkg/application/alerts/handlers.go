package alerts

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-alert-mgmt/alerts")

// NewPacketAnomalyHandler feeds analyzer findings into the decision engine.
// Emission failures are logged and dropped so that one bad packet never
// stalls ingestion of the ones behind it.
func NewPacketAnomalyHandler(svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "packet-anomaly")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		anomaly := types.PacketAnomaly{}

		err = json.Unmarshal(itm.Body(), &anomaly)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		if anomaly.AlertType == "" || anomaly.Packet.ID == "" {
			log.Error("anomaly message without alert type or packet id")
			return
		}

		opts := make([]EmitOption, 0, 2)
		if anomaly.DeviceAuthID != nil {
			opts = append(opts, WithDeviceAuthID(*anomaly.DeviceAuthID))
		}
		if len(anomaly.Parameters) > 0 {
			opts = append(opts, WithParameters(anomaly.Parameters))
		}

		err = svc.Emit(ctx, anomaly.AlertType, anomaly.Packet, opts...)
		if err != nil {
			log.Error("could not emit alert", "alert_type", anomaly.AlertType, "packet_id", anomaly.Packet.ID, "err", err.Error())
			return
		}
	}
}
