package lilypond

// stepNames gives the base note-name syllable for each language. Deutsch is
// irregular: "h" names B natural and "b" is reserved for B-flat, rather than
// following the regular letter-plus-suffix pattern every other step and
// language uses; handled as a special case in pitchName below.
var stepNames = map[PitchLanguage]map[string]string{
	Nederlands: {"C": "c", "D": "d", "E": "e", "F": "f", "G": "g", "A": "a", "B": "b"},
	English:    {"C": "c", "D": "d", "E": "e", "F": "f", "G": "g", "A": "a", "B": "b"},
	Deutsch:    {"C": "c", "D": "d", "E": "e", "F": "f", "G": "g", "A": "a", "B": "h"},
	Italiano:   {"C": "do", "D": "re", "E": "mi", "F": "fa", "G": "sol", "A": "la", "B": "si"},
}

// alterSuffix gives the accidental suffix for each quarter-tone alteration
// amount (units of 0.5 semitone, so -2 is a plain flat and -1 is a
// half-flat), per language. Taken from the full microtonal range LilyPond
// supports: double-flat through double-sharp in quarter-tone steps.
var alterSuffix = map[PitchLanguage]map[int]string{
	English: {
		-4: "ff", -3: "tqf", -2: "f", -1: "qf", 0: "", 1: "qs", 2: "s", 3: "tqs", 4: "ss",
	},
	Nederlands: {
		-4: "eses", -3: "eseh", -2: "es", -1: "eh", 0: "", 1: "ih", 2: "is", 3: "isih", 4: "isis",
	},
	Deutsch: {
		-4: "eses", -3: "eseh", -2: "es", -1: "eh", 0: "", 1: "ih", 2: "is", 3: "isih", 4: "isis",
	},
	Italiano: {
		-4: "bb", -3: "bsb", -2: "b", -1: "sb", 0: "", 1: "sd", 2: "d", 3: "dsd", 4: "dd",
	},
}

// pitchName spells p in the given language, e.g. ("C", -2, 4) in English
// gives "cf'" (C-flat, with octave 4's mark appended by octaveMarks).
func pitchName(p Pitch, lang PitchLanguage) string {
	if lang == Deutsch && p.Step == "B" && p.Alter == -2 {
		return "b" + octaveMarks(p.Octave)
	}
	names, ok := stepNames[lang]
	if !ok {
		names = stepNames[Nederlands]
	}
	letter := names[p.Step]
	suffixes, ok := alterSuffix[lang]
	if !ok {
		suffixes = alterSuffix[Nederlands]
	}
	suffix := suffixes[p.Alter]
	return letter + suffix + octaveMarks(p.Octave)
}

// octaveMarks renders LilyPond's relative-free absolute octave notation:
// middle C (octave 4) is c', each octave above adds another apostrophe,
// each octave below adds a comma.
func octaveMarks(octave int) string {
	switch {
	case octave > 4:
		out := ""
		for i := 0; i < octave-3; i++ {
			out += "'"
		}
		return out
	case octave < 3:
		out := ""
		for i := 0; i < 3-octave; i++ {
			out += ","
		}
		return out
	case octave == 3:
		return ""
	default: // octave == 4
		return "'"
	}
}
