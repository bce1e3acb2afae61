package lilypond

// Convert parses a complete partwise MusicXML document and renders it as
// LilyPond source text. Zero-valued fields in settings fall back to this
// package's defaults (Nederlands pitch names, LilyPond 2.24.0, the
// Scheme-free "safe" document template).
func Convert(xmlSource string, settings Settings) (string, error) {
	parts, err := ParseParts(xmlSource)
	if err != nil {
		return "", err
	}

	applied := settings
	if applied.Version == "" {
		applied.Version = defaultSettings().Version
	}

	return RenderParts(parts, applied), nil
}
