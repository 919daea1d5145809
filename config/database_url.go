package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// parseDatabaseURL splits a postgres:// DSN into PostgresConfig fields so
// deployments can pass a single DATABASE_URL instead of five variables.
func parseDatabaseURL(raw string) (PostgresConfig, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return PostgresConfig{}, err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return PostgresConfig{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	cfg := PostgresConfig{
		Host:     u.Hostname(),
		Port:     5432,
		Database: strings.TrimPrefix(u.Path, "/"),
		SSLMode:  "disable",
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return PostgresConfig{}, fmt.Errorf("invalid port %q", p)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		cfg.SSLMode = mode
	}
	return cfg, nil
}
