// Package logic implements the encbox commands on top of the box package.
package logic

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/encbox/internal/box"
	"github.com/idelchi/encbox/internal/config"
	"github.com/idelchi/encbox/internal/encryption"
	"github.com/idelchi/encbox/internal/fields"
	"github.com/idelchi/encbox/internal/fileutil"
	"github.com/idelchi/encbox/internal/logger"
)

var (
	// ErrNoFields is returned when neither --field nor --fields-from provide a field.
	ErrNoFields = errors.New("at least one field is required")
	// ErrMismatch is returned by Check when the fields do not produce the ciphertext.
	ErrMismatch = errors.New("ciphertext does not match the fields")
)

// IO bundles the streams a command reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Prompt is used when no password flag or file is available. Nil disables prompting.
	Prompt Prompter
}

type stats struct {
	fields     int
	variants   int
	plaintext  int
	ciphertext int
	written    int64
}

// Encrypt seals the configured fields and prints the base64 ciphertext.
// With cfg.All it prints one "<index> <name> <base64>" line per variant instead.
func Encrypt(ctx context.Context, cfg *config.Config, streams IO) error {
	start := time.Now()
	log := logger.FromContext(ctx)

	password, source, err := resolvePassword(cfg, streams.Prompt)
	if err != nil {
		return err
	}

	log.Debug().Str("source", string(source)).Msg("resolved password")

	values, err := collectFields(cfg)
	if err != nil {
		return err
	}

	builder := box.AddAll(box.NewBuilder(), values)

	st := stats{fields: len(values), plaintext: len(builder.Fields())}

	var out bytes.Buffer

	if cfg.All {
		results, err := box.EncryptAll(ctx, password, builder.Fields(), encryption.Variants(), cfg.Parallel)
		if err != nil {
			return fmt.Errorf("encrypting fields: %w", err)
		}

		for _, res := range results {
			fmt.Fprintf(&out, "%d %s %s\n", res.Variant.Index(), res.Variant, base64.StdEncoding.EncodeToString(res.Ciphertext))

			st.ciphertext += len(res.Ciphertext)
		}

		st.variants = len(results)
	} else {
		ciphertext, err := seal(ctx, cfg, builder, password)
		if err != nil {
			return err
		}

		out.WriteString(base64.StdEncoding.EncodeToString(ciphertext))
		out.WriteByte('\n')

		st.ciphertext = len(ciphertext)
		st.variants = 1
	}

	if st.written, err = emit(cfg, streams.Out, out.Bytes()); err != nil {
		return err
	}

	if cfg.Stats {
		printStats(streams.Err, st, time.Since(start))
	}

	return nil
}

// Decrypt opens a base64 ciphertext, taken from cfg.Ciphertext or the input stream,
// and writes the recovered field blob verbatim.
func Decrypt(ctx context.Context, cfg *config.Config, streams IO) error {
	start := time.Now()
	log := logger.FromContext(ctx)

	ciphertext, err := readCiphertext(cfg, streams.In)
	if err != nil {
		return err
	}

	password, source, err := resolvePassword(cfg, streams.Prompt)
	if err != nil {
		return err
	}

	variant, err := cfg.Variant()
	if err != nil {
		return fmt.Errorf("selecting scheme: %w", err)
	}

	log.Debug().Str("source", string(source)).Stringer("variant", variant).Int("size", len(ciphertext)).Msg("decrypting")

	container, err := box.Decrypt(password, ciphertext, variant)
	if err != nil {
		return fmt.Errorf("decrypting box: %w", err)
	}

	plaintext := container.Fields()

	written, err := emit(cfg, streams.Out, plaintext)
	if err != nil {
		return err
	}

	if cfg.Stats {
		printStats(streams.Err, stats{
			variants:   1,
			plaintext:  len(plaintext),
			ciphertext: len(ciphertext),
			written:    written,
		}, time.Since(start))
	}

	return nil
}

// Check verifies that the configured fields seal to the given ciphertext.
// Unlike Decrypt it detects a wrong password in every mode.
func Check(ctx context.Context, cfg *config.Config, streams IO) error {
	ciphertext, err := readCiphertext(cfg, streams.In)
	if err != nil {
		return err
	}

	password, _, err := resolvePassword(cfg, streams.Prompt)
	if err != nil {
		return err
	}

	values, err := collectFields(cfg)
	if err != nil {
		return err
	}

	want, err := seal(ctx, cfg, box.AddAll(box.NewBuilder(), values), password)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(want, ciphertext) != 1 {
		return ErrMismatch
	}

	fmt.Fprintln(streams.Out, "ok")

	return nil
}

// seal keys builder with password and the configured variant and encrypts it.
func seal(ctx context.Context, cfg *config.Config, builder *box.Builder, password string) ([]byte, error) {
	variant, err := cfg.Variant()
	if err != nil {
		return nil, fmt.Errorf("selecting scheme: %w", err)
	}

	if _, err := builder.SetPassword(password).SetCipher(variant); err != nil {
		return nil, fmt.Errorf("selecting scheme: %w", err)
	}

	logger.FromContext(ctx).Debug().Stringer("variant", variant).Int("bytes", len(builder.Fields())).Msg("encrypting")

	container, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building box: %w", err)
	}

	ciphertext, err := container.Encrypt()
	if err != nil {
		return nil, fmt.Errorf("encrypting fields: %w", err)
	}

	return ciphertext, nil
}

// collectFields returns the --field values followed by the --fields-from values.
func collectFields(cfg *config.Config) ([]string, error) {
	values := append([]string{}, cfg.Fields...)

	if cfg.FieldsFrom != "" {
		loaded, err := fields.Load(cfg.FieldsFrom)
		if err != nil {
			return nil, fmt.Errorf("loading fields: %w", err)
		}

		values = append(values, loaded...)
	}

	if len(values) == 0 {
		return nil, ErrNoFields
	}

	return values, nil
}

func readCiphertext(cfg *config.Config, in io.Reader) ([]byte, error) {
	encoded := cfg.Ciphertext

	if encoded == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading ciphertext: %w", err)
		}

		encoded = string(data)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding base64 ciphertext: %w", err)
	}

	return ciphertext, nil
}

// emit writes data to cfg.Output atomically, or to w when no output file is set.
func emit(cfg *config.Config, w io.Writer, data []byte) (int64, error) {
	if cfg.Output != "" {
		size, err := fileutil.WriteFile(cfg.Output, data)
		if err != nil {
			return 0, fmt.Errorf("writing output: %w", err)
		}

		return size, nil
	}

	n, err := w.Write(data)
	if err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	return int64(n), nil
}

func printStats(w io.Writer, st stats, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Fields:     %d\n", st.fields)
	fmt.Fprintf(w, "  Variants:   %d\n", st.variants)
	fmt.Fprintf(w, "  Plaintext:  %s\n", humanize.IBytes(uint64(st.plaintext)))  //nolint:gosec // lengths are non-negative
	fmt.Fprintf(w, "  Ciphertext: %s\n", humanize.IBytes(uint64(st.ciphertext))) //nolint:gosec // lengths are non-negative
	fmt.Fprintf(w, "  Written:    %s\n", humanize.IBytes(uint64(max(0, st.written))))
	fmt.Fprintf(w, "  Duration:   %s\n", duration.Round(time.Millisecond))
}
