package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leafo/notengine/internal/docmodel"
	"github.com/leafo/notengine/internal/pitch"
)

// Project files are a line-oriented text format: optional "#title"/
// "#composer" header lines, then one or more staff blocks. A staff block
// is a single "@key=value ..." directive line followed by exactly one
// notation text line. Blank lines and lines starting with "#" elsewhere
// in the file are ignored.
//
//	#title Twinkle Twinkle
//	#composer Trad.
//
//	@system=western role=melody label=Verse key=G time=4/4 tempo=120
//	CCGGAAG-
//
//	@system=western role=bass label=Bass key=G time=4/4
//	CCCC----
const (
	directivePrefix = '@'
	commentPrefix   = '#'
)

func loadDocument(path string) (*docmodel.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project file: %w", err)
	}
	defer f.Close()

	doc := docmodel.New()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending map[string]string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue

		case pending == nil && strings.HasPrefix(trimmed, "#title "):
			doc.Title = strings.TrimSpace(trimmed[len("#title "):])

		case pending == nil && strings.HasPrefix(trimmed, "#composer "):
			doc.Composer = strings.TrimSpace(trimmed[len("#composer "):])

		case strings.HasPrefix(trimmed, string(commentPrefix)):
			continue

		case strings.HasPrefix(trimmed, string(directivePrefix)):
			pending = parseDirectiveFields(trimmed[1:])

		case pending != nil:
			l, err := newLineFromFields(pending, line)
			if err != nil {
				return nil, err
			}
			doc.AddLine(l)
			pending = nil

		default:
			return nil, fmt.Errorf("notation text %q has no preceding @ directive", trimmed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("trailing @ directive has no notation text line")
	}

	return doc, nil
}

// parseDirectiveFields tokenizes "key=value key2=\"quoted value\"" into a
// map, the only parsing a bespoke line-oriented directive syntax like this
// needs; no library in the retrieval pack targets this shape (json-iterator
// and encoding/xml both expect a structured document, not a single line of
// space-separated key=value pairs).
func parseDirectiveFields(s string) map[string]string {
	fields := make(map[string]string)
	i, n := 0, len(s)
	for i < n {
		for i < n && s[i] == ' ' {
			i++
		}
		start := i
		for i < n && s[i] != '=' && s[i] != ' ' {
			i++
		}
		if i >= n || s[i] != '=' {
			i++
			continue
		}
		key := s[start:i]
		i++ // skip '='

		var value strings.Builder
		if i < n && s[i] == '"' {
			i++
			for i < n && s[i] != '"' {
				value.WriteByte(s[i])
				i++
			}
			if i < n {
				i++ // skip closing quote
			}
		} else {
			for i < n && s[i] != ' ' {
				value.WriteByte(s[i])
				i++
			}
		}
		fields[key] = value.String()
	}
	return fields
}

func parseSystem(s string) pitch.System {
	switch strings.ToLower(s) {
	case "number":
		return pitch.Number
	case "sargam":
		return pitch.Sargam
	case "bhatkhande":
		return pitch.Bhatkhande
	case "tabla":
		return pitch.Tabla
	default:
		return pitch.Western
	}
}

func parseStaffRole(s string) docmodel.StaffRole {
	switch strings.ToLower(s) {
	case "bass":
		return docmodel.Bass
	case "drum":
		return docmodel.Drum
	case "groupheader", "group-header":
		return docmodel.GroupHeader
	default:
		return docmodel.Melody
	}
}

func newLineFromFields(fields map[string]string, text string) (*docmodel.Line, error) {
	system := parseSystem(fields["system"])
	l := docmodel.NewLine(system)

	l.Label = fields["label"]
	l.Tala = fields["tala"]
	l.Lyrics = fields["lyrics"]
	l.Tonic = fields["tonic"]
	l.KeySignature = fields["key"]
	l.TimeSignature = fields["time"]
	l.Tempo = fields["tempo"]
	l.StaffRole = parseStaffRole(fields["role"])

	if v, ok := fields["system-start"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("system-start=%q is not an integer: %w", v, err)
		}
		l.SystemStartCount = n
	}

	l.Cells = docmodel.ParseText(text, system)

	return l, nil
}
