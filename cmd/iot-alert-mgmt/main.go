package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/application/alerts"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/application/policies"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/infrastructure/router"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/lorawatch/iot-alert-mgmt/internal/pkg/presentation/api"
	"github.com/lorawatch/iot-alert-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"
)

const serviceName string = "iot-alert-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/lorawatch/config/authz.rego",
		configurationFile: "/opt/lorawatch/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "lorawatch",
		dbSSLMode:  "disable",
	}
}

type appConfig struct {
	AlertTypes []types.AlertType `yaml:"alerttypes"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(ctx, cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	authzPolicies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer authzPolicies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not create or connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	err = storage.SeedAlertTypes(ctx, s, cfg.AlertTypes)
	exitIf(err, logger, "could not seed alert types")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	policyCache := policies.New(s, messenger)
	alertSvc := alerts.New(s, policyCache, messenger)

	err = policyCache.Load(ctx)
	exitIf(err, logger, "could not load policy cache")

	err = policyCache.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "could not register policy change handler")

	err = alertSvc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "could not register packet anomaly handler")

	messenger.Start()

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), authzPolicies, alertSvc)
	exitIf(err, logger, "failed to register api handlers")

	apiServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort]),
		Handler: r,
	}

	go func() {
		logger.Info("starting api server", "address", apiServer.Addr)
		err := apiServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Error("api server failed", "err", err.Error())
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	apiServer.Shutdown(shutdownCtx)
	messenger.Close()
	s.Close()
}

func parseExternalConfigFile(_ context.Context, cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[configurationFile] = envOrDef(ctx, "CONFIG_FILE", flags[configurationFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "alert type configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
