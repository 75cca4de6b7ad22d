// Command b64 encodes or decodes a file, or standard input, as
// standard Base64.
//
// Usage:
//
//	b64 [-d] [-strict] [-v] [file]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ericlagergren/b64/base64"
)

type config struct {
	decode bool
	strict bool
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// realMain runs the command and returns its exit status.
func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("b64", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		decode  = fs.Bool("d", false, "Decode the input instead of encoding it")
		strict  = fs.Bool("strict", false, "Reject non-zero padding bits when decoding")
		verbose = fs.Bool("v", false, "Log diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Usage: b64 [-d] [-strict] [-v] [file]")
		return 2
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck

	in := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	cfg := config{decode: *decode, strict: *strict}
	if err := run(log, cfg, in, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// run reads all of r, then writes its encoding (or decoding)
// to w.
func run(log *zap.Logger, cfg config, r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug("read input", zap.Int("bytes", len(src)), zap.Bool("decode", cfg.decode))

	enc := base64.StdEncoding
	if cfg.strict {
		enc = enc.Strict()
	}

	var out []byte
	if cfg.decode {
		src = bytes.TrimSuffix(src, []byte("\n"))
		src = bytes.TrimSuffix(src, []byte("\r"))
		out, err = enc.AppendDecode(nil, src)
		if err != nil {
			log.Debug("decode failed", zap.Int("bytes", len(src)), zap.Error(err))
			return fmt.Errorf("decode: %w", err)
		}
	} else {
		out = enc.AppendEncode(nil, src)
		out = append(out, '\n')
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug("wrote output", zap.Int("bytes", len(out)))
	return nil
}
