package atlas

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
)

// On-disk record sizes. Corners are little-endian uint16 U,V pairs followed
// by the page byte; there is no padding.
const (
	FloorRecordSize = 4*4 + 1
	FaceRecordSize  = 3*4 + 1
	AnimRecordSize  = 2 + MaxAnimFrames*2 + MaxAnimFrames + 1 + 1 + 2
)

var ErrShortRecord = errors.New("atlas: short record")

func readRecords[T any](r io.Reader, n int, what string) ([]T, error) {
	recs := make([]T, n)
	if n == 0 {
		return recs, nil
	}
	if err := binary.Read(r, binary.LittleEndian, recs); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read %d %s records: %w", n, what, ErrShortRecord)
		}
		return nil, fmt.Errorf("read %d %s records: %w", n, what, err)
	}
	return recs, nil
}

func writeRecords[T any](w io.Writer, recs []T, what string) error {
	if err := binary.Write(w, binary.LittleEndian, recs); err != nil {
		return fmt.Errorf("write %d %s records: %w", len(recs), what, err)
	}
	return nil
}

// ReadFloorTextures decodes n SingleFloorTexture records without migrating.
func ReadFloorTextures(r io.Reader, n int) ([]FloorTexture, error) {
	return readRecords[FloorTexture](r, n, "floor")
}

func WriteFloorTextures(w io.Writer, recs []FloorTexture) error {
	return writeRecords(w, recs, "floor")
}

// ReadFaceTextures decodes n SingleTexture records without migrating.
func ReadFaceTextures(r io.Reader, n int) ([]FaceTexture, error) {
	return readRecords[FaceTexture](r, n, "face")
}

func WriteFaceTextures(w io.Writer, recs []FaceTexture) error {
	return writeRecords(w, recs, "face")
}

func ReadAnimTmaps(r io.Reader, n int) ([]AnimTmap, error) {
	return readRecords[AnimTmap](r, n, "anim")
}

func WriteAnimTmaps(w io.Writer, recs []AnimTmap) error {
	return writeRecords(w, recs, "anim")
}

// RemapStats counts what a load migrated.
type RemapStats struct {
	Records  int
	Migrated int
	Closest  int // migrated to an approximate tile
}

func (s *RemapStats) note(kind TextureKind, i int, r RemapRule, ok bool) {
	s.Records++
	if !ok {
		return
	}
	s.Migrated++
	if r.Closest {
		s.Closest++
		log.Printf("%s texture %d: legacy tile %d has no equivalent, using tile %d", kind, i, r.Test, r.Target)
	}
}

// LoadFloorTextures reads n legacy floor records and migrates each one to
// the current atlas layout.
func LoadFloorTextures(r io.Reader, n, formatVersion int) ([]FloorTexture, RemapStats, error) {
	var stats RemapStats
	legacy, err := ReadFloorTextures(r, n)
	if err != nil {
		return nil, stats, err
	}
	out := make([]FloorTexture, n)
	for i := range legacy {
		rule, ok := RemapFloorTexture(&out[i], &legacy[i], formatVersion)
		stats.note(KindFloor, i, rule, ok)
	}
	return out, stats, nil
}

// LoadFaceTextures reads n legacy face records and migrates each one.
func LoadFaceTextures(r io.Reader, n, formatVersion int) ([]FaceTexture, RemapStats, error) {
	var stats RemapStats
	legacy, err := ReadFaceTextures(r, n)
	if err != nil {
		return nil, stats, err
	}
	out := make([]FaceTexture, n)
	for i := range legacy {
		rule, ok := RemapFaceTexture(&out[i], &legacy[i], formatVersion)
		stats.note(KindFace, i, rule, ok)
	}
	return out, stats, nil
}
