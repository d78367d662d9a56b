package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DefaultDatabaseURL points to a file-backed SQLite database in the working directory
const DefaultDatabaseURL = "sqlite:///./shopapp.db"

// Connection string schemes
const (
	PostgresSchemeAlias = "postgres://"
	PostgresScheme      = "postgresql://"
	SqliteScheme        = "sqlite://"
	SqliteMemoryDSN     = ":memory:"

	// postgresDriverPrefix starts a driver-qualified URL such as postgresql+psycopg2://
	postgresDriverPrefix = "postgresql+"
)

// DatabaseSettings holds the resolved database connection settings
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	URL  string `mapstructure:"url" validate:"required"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	// Name, when set for PostgreSQL, is created if missing and used instead of the URL's database
	Name string `mapstructure:"name" validate:"omitempty,max=63"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}

// IsPostgres reports whether the settings select PostgreSQL
func (s *DatabaseSettings) IsPostgres() bool {
	return s.Type == PostgresDbType
}

// NormalizeDatabaseURL rewrites the postgres:// alias to the canonical postgresql:// scheme.
// Everything after the scheme is left untouched.
func NormalizeDatabaseURL(raw string) string {
	if strings.HasPrefix(raw, PostgresSchemeAlias) {
		return PostgresScheme + strings.TrimPrefix(raw, PostgresSchemeAlias)
	}
	return raw
}

// DatabaseSettingsFromURL resolves a connection string into DatabaseSettings.
// An empty string falls back to DefaultDatabaseURL.
func DatabaseSettingsFromURL(raw string) (DatabaseSettings, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultDatabaseURL
	}

	normalized := NormalizeDatabaseURL(raw)

	var settings DatabaseSettings
	switch {
	case strings.HasPrefix(normalized, PostgresScheme), strings.HasPrefix(normalized, postgresDriverPrefix):
		dsn, err := postgresDSN(normalized)
		if err != nil {
			return DatabaseSettings{}, err
		}
		u, err := url.Parse(dsn)
		if err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				err = urlErr.Err
			}
			return DatabaseSettings{}, fmt.Errorf("malformed database url: %w", err)
		}
		if u.Host == "" {
			return DatabaseSettings{}, fmt.Errorf("database url %s has no host", u.Redacted())
		}
		settings = DatabaseSettings{
			Type: PostgresDbType,
			URL:  normalized,
			DSN:  dsn,
		}
	case strings.HasPrefix(normalized, SqliteScheme):
		dsn, err := sqliteDSN(normalized)
		if err != nil {
			return DatabaseSettings{}, err
		}
		settings = DatabaseSettings{
			Type: SqliteDbType,
			URL:  normalized,
			DSN:  dsn,
		}
	default:
		scheme, _, _ := strings.Cut(normalized, ":")
		return DatabaseSettings{}, fmt.Errorf("unsupported database scheme: %q", scheme)
	}

	if err := settings.Validate(); err != nil {
		return DatabaseSettings{}, err
	}

	return settings, nil
}

// postgresDSN drops the driver qualifier of postgresql+<driver>:// URLs
func postgresDSN(normalized string) (string, error) {
	if !strings.HasPrefix(normalized, postgresDriverPrefix) {
		return normalized, nil
	}

	_, rest, found := strings.Cut(normalized, "://")
	if !found {
		return "", fmt.Errorf("malformed database url: missing \"://\" after driver-qualified scheme")
	}
	return PostgresScheme + rest, nil
}

// sqliteDSN maps sqlite:///relative, sqlite:////absolute and the in-memory forms to a driver DSN
func sqliteDSN(normalized string) (string, error) {
	rest := strings.TrimPrefix(normalized, SqliteScheme)
	if rest == "" {
		return SqliteMemoryDSN, nil
	}

	if !strings.HasPrefix(rest, "/") {
		return "", fmt.Errorf("malformed sqlite url %q: expected sqlite:///<path>", normalized)
	}

	path := rest[1:]
	if path == "" || path == SqliteMemoryDSN {
		return SqliteMemoryDSN, nil
	}

	return path, nil
}
