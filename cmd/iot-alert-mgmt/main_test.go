package main

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestEnvironmentOverridesConfigFiles(t *testing.T) {
	is := is.New(t)

	t.Setenv("CONFIG_FILE", "/etc/lorawatch/alerttypes.yaml")
	t.Setenv("POLICIES_FILE", "/etc/lorawatch/authz.rego")

	args := os.Args
	os.Args = []string{"iot-alert-mgmt"}
	defer func() { os.Args = args }()

	_, flags := parseExternalConfig(context.Background(), defaultFlags())

	is.Equal("/etc/lorawatch/alerttypes.yaml", flags[configurationFile])
	is.Equal("/etc/lorawatch/authz.rego", flags[policiesFile])
}

func TestParseConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), io.NopCloser(strings.NewReader(`
alerttypes:
  - code: LAF-002
    message: "Possible ABP device on {collector.name}"
    parameters:
      threshold: 1
`)))
	is.NoErr(err)
	is.Equal(1, len(cfg.AlertTypes))
	is.Equal("LAF-002", cfg.AlertTypes[0].Code)
}
