package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/application/alerts"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/presentation/api/auth"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-alert-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc alerts.AlertService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.AnyScope))

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, svc))
				r.Get("/{alertID}", getAlertDetails(log, svc))
				r.Get("/{alertID}/message", getAlertMessage(log, svc))
			})

			r.Route("/quarantines", func(r chi.Router) {
				r.Get("/", queryQuarantinesHandler(log, svc))
				r.Patch("/{quarantineID}", resolveQuarantineHandler(log, svc))
			})
		})
	})

	return router, nil
}

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type apiResponse struct {
	Meta meta `json:"meta"`
	Data any  `json:"data"`
}

func writeCollection[T any](w http.ResponseWriter, collection types.Collection[T]) {
	response := apiResponse{
		Meta: meta{
			TotalRecords: collection.TotalCount,
			Count:        collection.Count,
		},
		Data: collection.Data,
	}

	if collection.Offset > 0 || collection.Limit > 0 {
		response.Meta.Offset = &collection.Offset
		response.Meta.Limit = &collection.Limit
	}

	b, err := json.Marshal(response)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		organizations := auth.GetOrganizationsWithAllowedScopes(ctx, auth.AnyScope)

		collection, err := svc.Query(ctx, r.URL.Query(), organizations)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, collection)
	}
}

func getAlertDetails(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		organizations := auth.GetOrganizationsWithAllowedScopes(ctx, auth.AnyScope)

		alert, err := svc.GetByID(ctx, alertID, organizations)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to get alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(alert)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getAlertMessage(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alert-message")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		organizations := auth.GetOrganizationsWithAllowedScopes(ctx, auth.AnyScope)

		alert, err := svc.GetByID(ctx, alertID, organizations)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to get alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		message, err := svc.RenderMessage(ctx, alert)
		if err != nil {
			requestLogger.Error("unable to render alert message", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(message))
	}
}

func queryQuarantinesHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-quarantines")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		organizations := auth.GetOrganizationsWithAllowedScopes(ctx, auth.AnyScope)

		collection, err := svc.Quarantines(ctx, r.URL.Query(), organizations)
		if err != nil {
			requestLogger.Error("unable to query quarantines", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, collection)
	}
}

func resolveQuarantineHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "resolve-quarantine")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		quarantineID := chi.URLParam(r, "quarantineID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		patch := struct {
			Note string `json:"note"`
		}{}

		if len(body) > 0 {
			err = json.Unmarshal(body, &patch)
			if err != nil {
				requestLogger.Error("unable to unmarshal body", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		organizations := auth.GetOrganizationsWithAllowedScopes(ctx, auth.AnyScope)

		err = svc.ResolveQuarantine(ctx, quarantineID, patch.Note, organizations)
		if err != nil {
			if errors.Is(err, alerts.ErrQuarantineNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to resolve quarantine", "quarantine_id", quarantineID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
