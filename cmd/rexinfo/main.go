// Command rexinfo parses a REX2 file, prints its tempo/slice metadata, and
// optionally dumps the decoded audio (the full mix and each slice) as WAV
// files next to the input.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/rex2"
)

const missingPathMessage = "You must pass the path of the .rx2 file to inspect"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	path := args[0]
	dumpWAV := len(args) > 1 && args[1] == "--dump-wav"

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	rex, err := rex2.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	printInfo(out, rex)

	if !dumpWAV {
		return nil
	}

	return dumpAudio(rex, path)
}

func printInfo(out io.Writer, rex *rex2.RexFile) {
	fmt.Fprintln(out, "=== REX File Info ===")
	fmt.Fprintf(out, "Tempo:       %.1f BPM\n", rex.TempoBPM)
	fmt.Fprintf(out, "Time Sig:    %d/%d\n", rex.TimeSigNum, rex.TimeSigDen)
	fmt.Fprintf(out, "Bars:        %d\n", rex.Bars)
	fmt.Fprintf(out, "Beats:       %d\n", rex.Beats)
	fmt.Fprintf(out, "Sample Rate: %d Hz\n", rex.SampleRate)
	fmt.Fprintf(out, "Channels:    %d\n", rex.PCMChannels)
	fmt.Fprintf(out, "Total PCM:   %d frames\n", rex.PCMFrames)
	fmt.Fprintf(out, "Slices:      %d\n", rex.SliceCount())

	fmt.Fprintln(out, "\n=== Slices ===")

	for i, s := range rex.Slices {
		dur := rex.SliceDuration(i)
		fmt.Fprintf(out, "  Slice %2d: offset=%6d  length=%6d  (%s)\n", i, s.Offset, s.Length, dur)
	}
}

func dumpAudio(rex *rex2.RexFile, inputPath string) error {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := filepath.Dir(inputPath)

	fullPath := filepath.Join(dir, base+"_full.wav")
	if err := writeWAVFile(fullPath, rex.WriteWAV); err != nil {
		return err
	}

	for i := range rex.Slices {
		i := i
		slicePath := filepath.Join(dir, fmt.Sprintf("%s_slice_%02d.wav", base, i))

		err := writeWAVFile(slicePath, func(w io.Writer) error { return rex.WriteSliceWAV(w, i) })
		if err != nil {
			return err
		}
	}

	return nil
}

func writeWAVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
