package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var tracer = otel.Tracer("alert-mgmt-client")

var ErrAlertNotFound = errors.New("alert not found")
var ErrQuarantineNotFound = errors.New("quarantine not found")

type AlertManagementClient interface {
	Alert(ctx context.Context, alertID string) (types.Alert, error)
	AlertMessage(ctx context.Context, alertID string) (string, error)
	QueryAlerts(ctx context.Context, params url.Values) ([]types.Alert, error)
	ResolveQuarantine(ctx context.Context, quarantineID, note string) error

	Close(ctx context.Context)
}

type alertManagementClient struct {
	url        string
	httpClient http.Client
}

func New(ctx context.Context, alertMgmtURL, oauthTokenURL, oauthClientID, oauthClientSecret string) (AlertManagementClient, error) {
	c := &alertManagementClient{
		url: alertMgmtURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	if oauthTokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     oauthClientID,
			ClientSecret: oauthClientSecret,
			TokenURL:     oauthTokenURL,
		}

		tokenSource := oauthConfig.TokenSource(ctx)

		token, err := tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthTokenURL, err)
		}

		if !token.Valid() {
			return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
		}

		c.httpClient.Transport = &oauth2.Transport{
			Source: tokenSource,
			Base:   c.httpClient.Transport,
		}
	}

	return c, nil
}

func (c *alertManagementClient) Alert(ctx context.Context, alertID string) (types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := c.get(ctx, "/api/v0/alerts/"+alertID, ErrAlertNotFound)
	if err != nil {
		return types.Alert{}, err
	}

	alert := types.Alert{}

	err = json.Unmarshal(b, &alert)
	if err != nil {
		return types.Alert{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return alert, nil
}

func (c *alertManagementClient) AlertMessage(ctx context.Context, alertID string) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert-message")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	b, err := c.get(ctx, "/api/v0/alerts/"+alertID+"/message", ErrAlertNotFound)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (c *alertManagementClient) QueryAlerts(ctx context.Context, params url.Values) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/api/v0/alerts"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	b, err := c.get(ctx, path, ErrAlertNotFound)
	if err != nil {
		return nil, err
	}

	response := struct {
		Data []types.Alert `json:"data"`
	}{}

	err = json.Unmarshal(b, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return response.Data, nil
}

func (c *alertManagementClient) ResolveQuarantine(ctx context.Context, quarantineID, note string) error {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-quarantine")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(struct {
		Note string `json:"note"`
	}{Note: note})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.url+"/api/v0/quarantines/"+quarantineID, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to resolve quarantine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrQuarantineNotFound
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	return nil
}

func (c *alertManagementClient) get(ctx context.Context, path string, notFound error) ([]byte, error) {
	log := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("request failed", "path", path, "status_code", resp.StatusCode)
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return b, nil
}

func (c *alertManagementClient) Close(ctx context.Context) {
}
