package box

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/encbox/internal/encryption"
)

// Result is the outcome of encrypting a field buffer under one variant.
type Result struct {
	Variant    encryption.Variant
	Ciphertext []byte
}

// EncryptAll encrypts fields under every variant in variants, running at most parallel
// encryptions at once (unlimited when parallel <= 0). Results keep the order of variants.
// Each encryption uses its own Builder.
func EncryptAll(
	ctx context.Context,
	password string,
	fields []byte,
	variants []encryption.Variant,
	parallel int,
) ([]Result, error) {
	results := make([]Result, len(variants))

	group, ctx := errgroup.WithContext(ctx)

	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, variant := range variants {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ciphertext, err := encryptOne(password, fields, variant)
			if err != nil {
				return fmt.Errorf("encrypting with %s: %w", variant, err)
			}

			results[i] = Result{Variant: variant, Ciphertext: ciphertext}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func encryptOne(password string, fields []byte, variant encryption.Variant) ([]byte, error) {
	builder, err := NewBuilder().AddField(fields).SetPassword(password).SetCipher(variant)
	if err != nil {
		return nil, err
	}

	container, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return container.Encrypt()
}
