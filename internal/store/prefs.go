package store

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Setting keys.
const (
	KeyStartPath     = "start_path"
	KeyProgressStyle = "progress_style"
	KeyAccentColor   = "accent_color"
	KeyShowHelp      = "show_help"
)

const (
	ProgressGradient = "gradient"
	ProgressSolid    = "solid"
)

var ErrInvalidPref = errors.New("invalid preference")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Prefs are the user-editable display preferences.
type Prefs struct {
	StartPath     string
	ProgressStyle string
	AccentColor   string
	ShowHelp      bool
}

// DefaultPrefs matches the values seeded by the first migration.
func DefaultPrefs() Prefs {
	return Prefs{
		StartPath:     "",
		ProgressStyle: ProgressGradient,
		AccentColor:   "#4299E1",
		ShowHelp:      false,
	}
}

// Validate reports the first invalid field.
func (p Prefs) Validate() error {
	if p.ProgressStyle != ProgressGradient && p.ProgressStyle != ProgressSolid {
		return fmt.Errorf("%w: progress style %q", ErrInvalidPref, p.ProgressStyle)
	}
	if !hexColor.MatchString(p.AccentColor) {
		return fmt.Errorf("%w: accent color %q", ErrInvalidPref, p.AccentColor)
	}
	return nil
}

// LoadPrefs reads preferences, falling back to defaults for missing or
// unparsable values.
func (s *Store) LoadPrefs() (Prefs, error) {
	p := DefaultPrefs()
	settings, err := s.GetAllSettings()
	if err != nil {
		return p, err
	}
	for _, st := range settings {
		switch st.Key {
		case KeyStartPath:
			p.StartPath = st.Value
		case KeyProgressStyle:
			if st.Value == ProgressGradient || st.Value == ProgressSolid {
				p.ProgressStyle = st.Value
			}
		case KeyAccentColor:
			if hexColor.MatchString(st.Value) {
				p.AccentColor = st.Value
			}
		case KeyShowHelp:
			if b, err := strconv.ParseBool(st.Value); err == nil {
				p.ShowHelp = b
			}
		}
	}
	return p, nil
}

// SavePrefs validates and writes all preferences in one transaction.
func (s *Store) SavePrefs(p Prefs) error {
	if err := p.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	values := []Setting{
		{Key: KeyStartPath, Value: p.StartPath},
		{Key: KeyProgressStyle, Value: p.ProgressStyle},
		{Key: KeyAccentColor, Value: p.AccentColor},
		{Key: KeyShowHelp, Value: strconv.FormatBool(p.ShowHelp)},
	}
	for _, v := range values {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			v.Key, v.Value,
		); err != nil {
			return fmt.Errorf("save setting %q: %w", v.Key, err)
		}
	}
	return tx.Commit()
}
