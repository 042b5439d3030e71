package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrNoID          = errors.New("data contains no id")
	ErrAlreadyExists = errors.New("already exists")
	ErrResolved      = errors.New("quarantine already resolved")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS data_collectors (
			data_collector_id	TEXT NOT NULL,
			name				TEXT NOT NULL,
			organization_id		TEXT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_data_collectors PRIMARY KEY (data_collector_id)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id			TEXT NOT NULL,
			dev_eui				TEXT NULL,
			join_eui			TEXT NULL,
			name				TEXT NULL,
			vendor				TEXT NULL,
			app_name			TEXT NULL,
			data_collector_id	TEXT NOT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS device_sessions (
			device_session_id	TEXT NOT NULL,
			dev_addr			TEXT NOT NULL,
			device_id			TEXT NULL,
			data_collector_id	TEXT NOT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_device_sessions PRIMARY KEY (device_session_id)
		);

		CREATE TABLE IF NOT EXISTS gateways (
			gateway_id			TEXT NOT NULL,
			gw_hex_id			TEXT NOT NULL,
			name				TEXT NULL,
			vendor				TEXT NULL,
			data_collector_id	TEXT NOT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_gateways PRIMARY KEY (gateway_id)
		);

		CREATE TABLE IF NOT EXISTS alert_types (
			code		TEXT NOT NULL,
			message		TEXT NOT NULL,
			parameters	JSONB NOT NULL DEFAULT '{}',
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alert_types PRIMARY KEY (code)
		);

		CREATE TABLE IF NOT EXISTS policies (
			policy_id		TEXT NOT NULL,
			name			TEXT NULL,
			organization_id	TEXT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_policies PRIMARY KEY (policy_id)
		);

		CREATE TABLE IF NOT EXISTS policy_items (
			policy_item_id	TEXT NOT NULL,
			policy_id		TEXT NOT NULL,
			alert_type_code	TEXT NOT NULL,
			enabled			BOOLEAN NOT NULL DEFAULT TRUE,
			parameters		JSONB NOT NULL DEFAULT '{}',
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_policy_items PRIMARY KEY (policy_item_id),
			CONSTRAINT policy_items_policy_type_unique UNIQUE (policy_id, alert_type_code)
		);

		CREATE TABLE IF NOT EXISTS policy_data_collectors (
			policy_id			TEXT NOT NULL,
			data_collector_id	TEXT NOT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_policy_data_collectors PRIMARY KEY (policy_id, data_collector_id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id			TEXT NOT NULL,
			alert_type_code		TEXT NOT NULL,
			device_id			TEXT NULL,
			device_session_id	TEXT NULL,
			gateway_id			TEXT NULL,
			device_auth_id		TEXT NULL,
			data_collector_id	TEXT NOT NULL,
			packet_id			TEXT NOT NULL,
			parameters			JSONB NOT NULL DEFAULT '{}',
			visible				BOOLEAN NOT NULL DEFAULT TRUE,
			created_at			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS quarantines (
			quarantine_id		TEXT NOT NULL,
			alert_type_code		TEXT NOT NULL,
			device_id			TEXT NULL,
			device_session_id	TEXT NULL,
			data_collector_id	TEXT NOT NULL,
			alert_id			TEXT NOT NULL,
			since				timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_checked		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved			BOOLEAN NOT NULL DEFAULT FALSE,
			resolved_at			timestamp with time zone NULL,
			resolution_note		TEXT NULL,
			CONSTRAINT pkey_quarantines PRIMARY KEY (quarantine_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS quarantines_open_key_idx
			ON quarantines (alert_type_code, COALESCE(device_id, ''), COALESCE(device_session_id, ''), data_collector_id)
			WHERE NOT resolved;

		CREATE INDEX IF NOT EXISTS alerts_collector_type_idx ON alerts (data_collector_id, alert_type_code);
		CREATE INDEX IF NOT EXISTS devices_dev_eui_idx ON devices (dev_eui, data_collector_id);
		CREATE INDEX IF NOT EXISTS device_sessions_dev_addr_idx ON device_sessions (dev_addr, data_collector_id);
		CREATE INDEX IF NOT EXISTS gateways_gw_hex_id_idx ON gateways (gw_hex_id, data_collector_id);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
