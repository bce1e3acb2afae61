package docmodel

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var bundleJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// LineSnapshot is the JSON-friendly projection of a Line used for the
// debug/introspection snapshot produced by the CLI's "--json" flag.
type LineSnapshot struct {
	Text             string `json:"text"`
	Label            string `json:"label,omitempty"`
	Tala             string `json:"tala,omitempty"`
	Lyrics           string `json:"lyrics,omitempty"`
	Tonic            string `json:"tonic,omitempty"`
	System           string `json:"system"`
	KeySignature     string `json:"key_signature,omitempty"`
	TimeSignature    string `json:"time_signature,omitempty"`
	Tempo            string `json:"tempo,omitempty"`
	StaffRole        string `json:"staff_role"`
	SystemStartCount int    `json:"system_start_count,omitempty"`
	SystemID         int    `json:"system_id"`
	PartID           string `json:"part_id"`
}

// Snapshot is the JSON-friendly projection of an entire Document.
type Snapshot struct {
	Title    string         `json:"title,omitempty"`
	Composer string         `json:"composer,omitempty"`
	Lines    []LineSnapshot `json:"lines"`
}

// Snapshot projects d into its JSON-serializable form.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{Title: d.Title, Composer: d.Composer}
	for _, l := range d.Lines {
		s.Lines = append(s.Lines, LineSnapshot{
			Text:             l.Text(),
			Label:            l.Label,
			Tala:             l.Tala,
			Lyrics:           l.Lyrics,
			Tonic:            l.Tonic,
			System:           l.System.String(),
			KeySignature:     l.KeySignature,
			TimeSignature:    l.TimeSignature,
			Tempo:            l.Tempo,
			StaffRole:        l.StaffRole.String(),
			SystemStartCount: l.SystemStartCount,
			SystemID:         l.SystemID,
			PartID:           l.PartID,
		})
	}
	return s
}

// ToJSON serializes d's snapshot using jsoniter, a drop-in encoding/json
// replacement used throughout this module's project-save formats.
func (d *Document) ToJSON() ([]byte, error) {
	return bundleJSON.MarshalIndent(d.Snapshot(), "", "  ")
}

// SaveBundle packages the document's JSON snapshot alongside a rendered
// MusicXML export into a single zip archive, with a MANIFEST recording
// the export's checksum.
func (d *Document) SaveBundle(w io.Writer, musicXML []byte) error {
	zw := zip.NewWriter(w)

	docJSON, err := d.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding document snapshot: %w", err)
	}

	if err := writeZipEntry(zw, "document.json", docJSON); err != nil {
		return fmt.Errorf("writing document.json: %w", err)
	}
	if err := writeZipEntry(zw, "score.musicxml", musicXML); err != nil {
		return fmt.Errorf("writing score.musicxml: %w", err)
	}

	checksum := sha256.Sum256(musicXML)
	manifest := fmt.Sprintf("score.musicxml sha256:%s\n", hex.EncodeToString(checksum[:]))
	if err := writeZipEntry(zw, "MANIFEST", []byte(manifest)); err != nil {
		return fmt.Errorf("writing MANIFEST: %w", err)
	}

	return zw.Close()
}

func writeZipEntry(zw *zip.Writer, name string, content []byte) error {
	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	}
	fw, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = fw.Write(content)
	return err
}
