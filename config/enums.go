package config

import "vlwgen/lyrics"

// What to do when generated page file already exists.
// ENUM(fail, skip, overwrite)
type OutputConflict int

// Post-processing applied to romanization of extracted lyrics.
// ENUM(detonePinyin, decapitalize, hepburn)
type LyricsFix int

// Apply runs the fix over lyrics rows (colour, original, romanized, English).
func (f LyricsFix) Apply(rows [][4]string) [][4]string {
	switch f {
	case LyricsFixDetonePinyin:
		return lyrics.DetonePinyinRows(rows)
	case LyricsFixDecapitalize:
		return lyrics.DecapitalizeRomanization(rows)
	case LyricsFixHepburn:
		return lyrics.StandardizeHepburn(rows)
	default:
		// this should never happen
		panic("unsupported lyrics fix requested")
	}
}
