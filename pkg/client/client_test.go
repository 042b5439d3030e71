package client

import (
	"context"
	"errors"
	"net/url"
	"testing"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestNewFetchesToken(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/token"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(tokenResponse)),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), s.URL()+"/token", "", "")
	is.NoErr(err)

	c.Close(ctx)
}

func TestGetAlert(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts/a1"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"id":"a1","alertType":"LAF-002","dataCollectorID":"c1","packetID":"pkt-1","visible":true,"createdAt":"2025-03-14T09:26:53Z"}`)),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	alert, err := c.Alert(ctx, "a1")
	is.NoErr(err)
	is.Equal("a1", alert.ID)
	is.Equal("LAF-002", alert.AlertTypeCode)
	is.True(alert.Visible)
}

func TestGetUnknownAlert(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts/nope"),
		),
		test.Returns(
			response.Code(404),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	_, err = c.Alert(ctx, "nope")
	is.True(errors.Is(err, ErrAlertNotFound))
}

func TestQueryAlerts(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"meta":{"totalRecords":1,"count":1},"data":[{"id":"a1","alertType":"LAF-006","dataCollectorID":"c1","packetID":"pkt-1","visible":true,"createdAt":"2025-03-14T09:26:53Z"}]}`)),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	alerts, err := c.QueryAlerts(ctx, url.Values{"type": []string{"LAF-006"}})
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal("LAF-006", alerts[0].AlertTypeCode)
}

func TestResolveQuarantine(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/quarantines/q1"),
			expects.RequestMethod("PATCH"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"note":"device confirmed as OTAA"`),
		),
		test.Returns(
			response.Code(204),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	err = c.ResolveQuarantine(ctx, "q1", "device confirmed as OTAA")
	is.NoErr(err)
}

const tokenResponse string = `{"access_token":"testtoken","expires_in":300,"refresh_expires_in":0,"token_type":"Bearer","not-before-policy":0,"scope":"email profile"}`
