package lilypond

import (
	"fmt"
	"strings"
)

// RenderParts walks each part's Music tree and joins them into complete
// LilyPond source, one \new Staff block per part (omitted entirely when
// there's only one part), wrapped in the document shell Settings selects.
func RenderParts(parts []SequentialMusic, settings Settings) string {
	staves := renderStaves(parts, settings)
	return wrapDocument(staves, settings)
}

func renderStaves(parts []SequentialMusic, settings Settings) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return renderSequential(parts[0], settings, 2)
	}

	var blocks []string
	for _, part := range parts {
		inner := renderSequential(part, settings, 4)
		blocks = append(blocks, fmt.Sprintf("  \\new Staff {\n%s\n  }", inner))
	}
	return strings.Join(blocks, "\n")
}

func renderSequential(seq SequentialMusic, settings Settings, indent int) string {
	pad := strings.Repeat(" ", indent)
	var lines []string
	for _, m := range seq.Elements {
		lines = append(lines, pad+musicToLily(m, settings))
	}
	return strings.Join(lines, "\n")
}

func musicToLily(m Music, settings Settings) string {
	switch m.Kind {
	case KindNote:
		return noteToLily(m.Note, settings)
	case KindRest:
		return restToLily(m.Rest)
	case KindChord:
		return chordToLily(m.Chord, settings)
	case KindKeyChange:
		return keyToLily(m.KeyChange)
	case KindTimeChange:
		return timeToLily(m.TimeChange)
	case KindClefChange:
		return clefToLily(m.ClefChange)
	case KindTuplet:
		return tupletToLily(m.Tuplet, settings)
	case KindSequential:
		return sequentialInlineToLily(m.Sequential, settings)
	case KindSimultaneous:
		return simultaneousToLily(m.Simultaneous, settings)
	case KindVoice:
		return voiceToLily(m.Voice, settings)
	default:
		return ""
	}
}

func noteToLily(note *NoteEvent, settings Settings) string {
	var b strings.Builder

	if note.IsGrace {
		if note.GraceSlash {
			b.WriteString("\\acciaccatura ")
		} else {
			b.WriteString("\\grace ")
		}
	}

	b.WriteString(pitchName(note.Pitch, settings.Language))
	b.WriteString(note.Duration.String())

	if note.TieStart {
		b.WriteString(" ~")
	}

	if note.SlurStart {
		if note.SlurNumber > 1 {
			fmt.Fprintf(&b, "\\=%d(", note.SlurNumber)
		} else {
			b.WriteString("(")
		}
	}
	if note.SlurStop {
		if note.SlurNumber > 1 {
			fmt.Fprintf(&b, "\\=%d)", note.SlurNumber)
		} else {
			b.WriteString(")")
		}
	}

	return b.String()
}

func restToLily(rest *RestEvent) string {
	return "r" + rest.Duration.String()
}

func chordToLily(chord *ChordEvent, settings Settings) string {
	names := make([]string, len(chord.Pitches))
	for i, p := range chord.Pitches {
		names[i] = pitchName(p, settings.Language)
	}
	return fmt.Sprintf("<%s>%s", strings.Join(names, " "), chord.Duration.String())
}

// fifthsToKeyName maps a key signature's fifths count to the LilyPond
// pitch-class token \key expects, independent of pitch language (LilyPond
// key names always use the English-like token regardless of \language).
var fifthsToKeyName = map[int]string{
	-7: "cf", -6: "gf", -5: "df", -4: "af", -3: "ef", -2: "bf", -1: "f",
	0: "c",
	1: "g", 2: "d", 3: "a", 4: "e", 5: "b", 6: "fs", 7: "cs",
}

func keyToLily(key *KeySignature) string {
	name, ok := fifthsToKeyName[key.Fifths]
	if !ok {
		name = "c"
	}
	return fmt.Sprintf("\\key %s \\major", name)
}

func timeToLily(t *TimeSignature) string {
	return fmt.Sprintf("\\time %s/%s", t.Beats, t.BeatType)
}

func clefToLily(c *Clef) string {
	return fmt.Sprintf("\\clef %s", clefName(c.Sign, c.Line))
}

func clefName(sign string, line int) string {
	switch {
	case sign == "F" && line == 4:
		return "bass"
	case sign == "C" && line == 3:
		return "alto"
	case sign == "C" && line == 4:
		return "tenor"
	default:
		return "treble"
	}
}

func tupletToLily(t *TupletMusic, settings Settings) string {
	inner := make([]string, len(t.Contents))
	for i, m := range t.Contents {
		inner[i] = musicToLily(m, settings)
	}
	return fmt.Sprintf("\\tuplet %d/%d { %s }", t.ActualNotes, t.NormalNotes, strings.Join(inner, " "))
}

func sequentialInlineToLily(seq *SequentialMusic, settings Settings) string {
	inner := make([]string, len(seq.Elements))
	for i, m := range seq.Elements {
		inner[i] = musicToLily(m, settings)
	}
	return fmt.Sprintf("{ %s }", strings.Join(inner, " "))
}

func simultaneousToLily(sim *SimultaneousMusic, settings Settings) string {
	inner := make([]string, len(sim.Elements))
	for i, m := range sim.Elements {
		inner[i] = musicToLily(m, settings)
	}
	return fmt.Sprintf("<< %s >>", strings.Join(inner, " \\\\ "))
}

func voiceToLily(voice *VoiceMusic, settings Settings) string {
	inner := make([]string, len(voice.Elements))
	for i, m := range voice.Elements {
		inner[i] = musicToLily(m, settings)
	}
	contents := strings.Join(inner, " ")
	if voice.VoiceID != "" {
		return fmt.Sprintf("\\new Voice = \"%s\" { %s }", voice.VoiceID, contents)
	}
	return fmt.Sprintf("{ %s }", contents)
}
