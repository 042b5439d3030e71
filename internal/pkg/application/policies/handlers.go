package policies

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

var tracer = otel.Tracer("iot-alert-mgmt/policies")

func NewPolicyChangedHandler(cache PolicyCache) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "policy-changed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		event := types.PolicyChanged{}

		err = json.Unmarshal(itm.Body(), &event)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		err = cache.Apply(ctx, event)
		if err != nil {
			log.Error("could not apply policy change", "policy_id", event.Data.ID, "event_type", event.Type, "err", err.Error())
			return
		}

		log.Debug("applied policy change", "policy_id", event.Data.ID, "event_type", event.Type)
	}
}
