package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chunk(tag string, payload []byte) []byte {
	buf := make([]byte, 0, 8+len(payload)+1)
	buf = append(buf, tag...)

	var lenField [4]byte
	binary.BigEndian.PutUint32(lenField[:], uint32(len(payload)))
	buf = append(buf, lenField[:]...)
	buf = append(buf, payload...)

	if len(payload)%2 == 1 {
		buf = append(buf, 0)
	}

	return buf
}

func catFile(children ...[]byte) []byte {
	inner := []byte("REX2")
	for _, c := range children {
		inner = append(inner, c...)
	}

	return chunk("CAT ", inner)
}

func writeFixture(t *testing.T) string {
	t.Helper()

	glob := make([]byte, 20)
	binary.BigEndian.PutUint16(glob[4:6], 2)
	glob[6] = 4
	glob[7] = 4
	glob[8] = 4
	binary.BigEndian.PutUint32(glob[16:20], 120000)

	sinf := make([]byte, 10)
	sinf[0] = 1
	binary.BigEndian.PutUint16(sinf[4:6], 44100)
	binary.BigEndian.PutUint32(sinf[6:10], 8)

	slce := make([]byte, 8)
	binary.BigEndian.PutUint32(slce[0:4], 0)
	binary.BigEndian.PutUint32(slce[4:8], 8)

	sdat := bytes.Repeat([]byte{0xFF}, 64)

	data := catFile(chunk("GLOB", glob), chunk("SINF", sinf), chunk("SLCE", slce), chunk("SDAT", sdat))

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.rx2")

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return path
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("err = %v, want errMissingPath", err)
	}
}

func TestRunPrintsInfo(t *testing.T) {
	path := writeFixture(t)

	var out bytes.Buffer
	if err := run([]string{path}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	checks := []string{
		"Tempo:       120.0 BPM",
		"Time Sig:    4/4",
		"Sample Rate: 44100 Hz",
		"Channels:    1",
		"Slices:      1",
	}

	got := out.String()
	for _, c := range checks {
		if !strings.Contains(got, c) {
			t.Fatalf("expected output to contain %q, got:\n%s", c, got)
		}
	}
}

func TestRunInvalidPath(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"/nonexistent/path.rx2"}, &out); err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
}

func TestRunDumpWAVWritesFiles(t *testing.T) {
	path := writeFixture(t)

	var out bytes.Buffer
	if err := run([]string{path, "--dump-wav"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	dir := filepath.Dir(path)

	if _, err := os.Stat(filepath.Join(dir, "fixture_full.wav")); err != nil {
		t.Fatalf("expected full mix wav: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "fixture_slice_00.wav")); err != nil {
		t.Fatalf("expected slice 0 wav: %v", err)
	}
}
