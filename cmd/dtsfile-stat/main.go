// The dtsfile-stat command displays stats for a DTS file.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/siegetools/dtsfile"
	"github.com/siegetools/dtsfile/dts"
	"github.com/siegetools/dtsfile/errors"
	"github.com/siegetools/dtsfile/internal/config"
	"golang.org/x/crypto/blake2b"
)

const usage = `usage: dtsfile-stat [-lax] [-v] [INPUT] [OUTPUT]

Reads a DTS shape file or a DML material list file from INPUT, and writes to
OUTPUT statistics for the file.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

type Header struct {
	ClassName       string
	ClassNameLength int16
	FileLength      int32
	Version         uint32
}

type Stats struct {
	// Number of bytes in the file.
	Size int

	// BLAKE2b-256 hash of the file.
	Hash string

	// Header of the top-level record.
	Header Header

	// Number of elements in each list of a shape.
	Counts map[string]int `json:",omitempty"`

	// Number of meshes per version.
	MeshVersions map[string]int `json:",omitempty"`

	MaterialListVersion uint32 `json:",omitempty"`

	// File name of each material.
	MaterialFiles []string `json:",omitempty"`

	// First invalid index of a shape, if any.
	InvalidIndex string `json:",omitempty"`

	Warnings []string `json:",omitempty"`
}

func (s *Stats) Fill(b []byte, record dtsfile.Record) {
	sum := blake2b.Sum256(b)
	s.Size = len(b)
	s.Hash = hex.EncodeToString(sum[:])
	if record == nil {
		return
	}

	h := record.RecordHeader()
	s.Header = Header{
		ClassName:       h.ClassName,
		ClassNameLength: h.FileInfo.ClassNameLength,
		FileLength:      h.FileInfo.FileLength,
		Version:         h.Version,
	}

	var list dtsfile.MaterialList
	switch record := record.(type) {
	case dtsfile.Shape:
		s.Counts = map[string]int{}
		v := reflect.ValueOf(record).Elem()
		for i := 0; i < v.NumField(); i++ {
			if f := v.Field(i); f.Kind() == reflect.Slice {
				s.Counts[v.Type().Field(i).Name] = f.Len()
			}
		}
		s.MeshVersions = map[string]int{}
		for _, mesh := range record.MeshList() {
			s.MeshVersions[strconv.FormatUint(uint64(mesh.Version()), 10)]++
		}
		if err := dtsfile.Validate(record); err != nil {
			s.InvalidIndex = err.Error()
		}
		list = record.Materials()
	case dtsfile.MaterialList:
		list = record
	}
	if list != nil {
		s.MaterialListVersion = list.RecordHeader().Version
		s.MaterialFiles = dtsfile.MaterialFileNames(list)
	}
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	lax := flag.Bool("lax", false, "accept nested records with unexpected class names")
	verbose := flag.Bool("v", false, "log decoding details")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log, err := config.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("create logger: %w", err))
		return
	}
	defer log.Sync()
	dts.SetLogger(log)

	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	b, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		return
	}

	var stats Stats
	record, warn, err := dts.Decoder{NoValidate: true, LaxClassNames: *lax}.DecodeRecord(b, 0)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode warning: %w", warn))
		stats.Warnings = errors.Lines(warn)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
	}

	stats.Fill(b, record)

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
