package storage

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

// Setting keys.
const (
	SettingLabelsVersion = "labels_version"
	SettingScheme        = "scheme"
)

// SettingsRepository stores key/value settings.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the value of key and whether it was set.
func (r *SettingsRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get setting %s", key)
	}
	return value, true, nil
}

// Set stores value under key.
func (r *SettingsRepository) Set(key, value string) error {
	return setSetting(r.db, key, value)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setSetting(e execer, key, value string) error {
	_, err := e.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return errors.Wrapf(err, "failed to set setting %s", key)
	}
	return nil
}
