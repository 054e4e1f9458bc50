package storage

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// Label versions stored under SettingLabelsVersion.
const (
	LabelsVersionPhysical = 1
	LabelsVersionLogical  = 2
)

// ErrBadVersion is returned when the stored labels version is unreadable.
var ErrBadVersion = errors.New("storage: invalid labels version")

// LabelRepository stores the label map together with its key version.
type LabelRepository struct {
	db       *DB
	settings *SettingsRepository
}

// NewLabelRepository creates a new label repository.
func NewLabelRepository(db *DB) *LabelRepository {
	return &LabelRepository{db: db, settings: NewSettingsRepository(db)}
}

// LoadLabels returns every stored label and the version of their keys.
// Without a recorded version, existing rows are taken to be legacy
// physical keys; an empty table counts as current.
func (r *LabelRepository) LoadLabels() (map[string]string, int, error) {
	rows, err := r.db.Query("SELECT logical_id, text FROM labels")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to get labels")
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, 0, errors.Wrap(err, "failed to scan label")
		}
		out[id] = text
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "failed to iterate labels")
	}

	raw, ok, err := r.settings.Get(SettingLabelsVersion)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		if len(out) == 0 {
			return out, LabelsVersionLogical, nil
		}
		return out, LabelsVersionPhysical, nil
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrBadVersion, "%q", raw)
	}
	return out, version, nil
}

// SaveLabels replaces every stored label and marks the keys as logical.
func (r *LabelRepository) SaveLabels(labels map[string]string) error {
	return r.Replace(labels, LabelsVersionLogical)
}

// Replace swaps the stored labels for labels in one transaction and records
// version.
func (r *LabelRepository) Replace(labels map[string]string, version int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM labels"); err != nil {
			return errors.Wrap(err, "failed to clear labels")
		}

		stmt, err := tx.Prepare("INSERT INTO labels (logical_id, text, updated_at) VALUES (?, ?, ?)")
		if err != nil {
			return errors.Wrap(err, "failed to prepare label insert")
		}
		defer stmt.Close()

		for id, text := range labels {
			if _, err := stmt.Exec(id, text, now); err != nil {
				return errors.Wrapf(err, "failed to insert label %s", id)
			}
		}
		return setSetting(tx, SettingLabelsVersion, strconv.Itoa(version))
	})
}

// Count returns the number of stored labels.
func (r *LabelRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM labels").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count labels")
	}
	return count, nil
}

// LastUpdated returns when the labels were last written, or nil.
func (r *LabelRepository) LastUpdated() (*time.Time, error) {
	var raw sql.NullString
	if err := r.db.QueryRow("SELECT MAX(updated_at) FROM labels").Scan(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to get label timestamp")
	}
	if !raw.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw.String)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse label timestamp")
	}
	return &t, nil
}
