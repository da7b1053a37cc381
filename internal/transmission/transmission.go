// Package transmission loads BITS transmissions from the command line,
// files and standard input.
package transmission

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/bitskit/internal/mmfile"
	"github.com/joshuapare/bitskit/pkg/packet"
)

// DefaultMaxBytes caps how much raw or decompressed input Load accepts.
const DefaultMaxBytes = 16 << 20

// StdinArg selects standard input.
const StdinArg = "-"

var (
	// ErrInputTooLarge is returned when input exceeds Options.MaxBytes.
	ErrInputTooLarge = errors.New("transmission: input too large")
	// ErrIsDirectory is returned when the argument names a directory.
	ErrIsDirectory = errors.New("transmission: is a directory")
)

// Source records where a transmission came from.
type Source string

const (
	SourceLiteral Source = "literal"
	SourceFile    Source = "file"
	SourceStdin   Source = "stdin"
)

// Options controls Load.
type Options struct {
	// MaxBytes caps the input before and after decompression (0 = DefaultMaxBytes).
	MaxBytes int64

	// Stdin replaces os.Stdin for the "-" argument.
	Stdin io.Reader
}

// Transmission is a loaded, hex-decoded transmission.
type Transmission struct {
	Source      Source
	Name        string
	Compression Compression
	Bytes       []byte
}

// Load resolves arg to a transmission. "-" reads standard input, an existing
// file reads that file, a directory is ErrIsDirectory and anything else is
// parsed as inline hex.
func Load(arg string, opts Options) (*Transmission, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}

	if arg == StdinArg {
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		raw, err := readLimited(in, opts.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return parse(SourceStdin, "stdin", raw, opts)
	}

	if info, err := os.Stat(arg); err == nil {
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, arg)
		}
		f, err := mmfile.Open(arg, opts.MaxBytes)
		if err != nil {
			if errors.Is(err, mmfile.ErrTooLarge) {
				return nil, fmt.Errorf("%w: %w", ErrInputTooLarge, err)
			}
			return nil, err
		}
		defer f.Close()
		return parse(SourceFile, arg, f.Data, opts)
	}

	if int64(len(arg)) > opts.MaxBytes {
		return nil, fmt.Errorf("%w: argument is %d bytes (max %d)", ErrInputTooLarge, len(arg), opts.MaxBytes)
	}
	return parse(SourceLiteral, "argument", []byte(arg), opts)
}

// Parse decodes raw input bytes the same way Load does for files.
func Parse(raw []byte, opts Options) (*Transmission, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	return parse(SourceLiteral, "input", raw, opts)
}

func parse(src Source, name string, raw []byte, opts Options) (*Transmission, error) {
	comp := DetectCompression(raw)
	text, err := decompress(comp, raw, opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	text, err = normalize(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	data, err := packet.ParseHex(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Transmission{Source: src, Name: name, Compression: comp, Bytes: data}, nil
}

// normalize strips a byte-order mark, converts UTF-16 to UTF-8 and removes
// all whitespace.
func normalize(raw []byte) ([]byte, error) {
	dec := xunicode.BOMOverride(encoding.Nop.NewDecoder())
	text, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text), nil
}

// Bits returns the transmission length in bits.
func (t *Transmission) Bits() int { return len(t.Bytes) * 8 }

// Hex returns the transmission as upper-case hex.
func (t *Transmission) Hex() string { return strings.ToUpper(hex.EncodeToString(t.Bytes)) }

// Digest returns the hex BLAKE3-256 digest of the decoded bytes.
func (t *Transmission) Digest() string {
	sum := blake3.Sum256(t.Bytes)
	return hex.EncodeToString(sum[:])
}

// Decode parses the transmission into a packet tree.
func (t *Transmission) Decode(limits packet.Limits) (*packet.Packet, error) {
	return packet.DecodeWithOptions(t.Bytes, packet.Options{Limits: limits})
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, maxBytes)
	}
	return data, nil
}
