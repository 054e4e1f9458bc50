package cli

import (
	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube"
	"github.com/SeamusWaldron/lettercube/internal/logger"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
	"github.com/SeamusWaldron/lettercube/internal/state"
	"github.com/SeamusWaldron/lettercube/internal/storage"
)

// openDB opens the database and applies pending migrations.
func openDB() (*storage.DB, error) {
	path := getDBPath()
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.OpenMigrated(path)
}

// workspace bundles what most commands need: the database, the state file
// and a session built from both.
type workspace struct {
	db      *storage.DB
	state   *state.StateFile
	session *lettercube.Session
}

func openWorkspace() (*workspace, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}

	stateFile, err := state.NewDefaultStateFile()
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to load state")
	}

	sess, err := newSession(db, stateFile)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &workspace{db: db, state: stateFile, session: sess}, nil
}

func (w *workspace) Close() {
	w.db.Close()
}

func newSession(db *storage.DB, stateFile *state.StateFile) (*lettercube.Session, error) {
	name := scheme.Default.Name
	avoidRepeat := true
	if cfg != nil {
		name = cfg.Scheme.Name
		avoidRepeat = cfg.Quiz.AvoidRepeat
	}
	s, err := scheme.Lookup(name)
	if err != nil {
		return nil, err
	}

	if err := checkScheme(db, s); err != nil {
		return nil, err
	}

	front, top, _ := stateFile.Orientation()

	return lettercube.NewSession(
		lettercube.WithLogger(logger.Component("session")),
		lettercube.WithScheme(s),
		lettercube.WithStore(storage.NewLabelRepository(db)),
		lettercube.WithOrientation(front, top),
		lettercube.WithAvoidRepeat(avoidRepeat),
	)
}

// checkScheme records the scheme the letters were made under and warns
// when the configured one differs, since buffers then hide some letters.
func checkScheme(db *storage.DB, s scheme.Scheme) error {
	settings := storage.NewSettingsRepository(db)
	saved, ok, err := settings.Get(storage.SettingScheme)
	if err != nil {
		return err
	}
	if !ok {
		return settings.Set(storage.SettingScheme, s.Name)
	}
	if saved != s.Name {
		logger.Component("cli").Warnw("scheme differs from the one letters were saved under",
			"configured", s.Name, "saved", saved)
	}
	return nil
}
