package logic

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/idelchi/encbox/internal/encryption"
)

// Schemes prints the index, name, key size, IV size and mode of every variant.
func Schemes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // column padding

	fmt.Fprintln(tw, "INDEX\tNAME\tKEY\tIV\tMODE")

	for _, v := range encryption.Variants() {
		spec := v.Spec()

		iv := "-"
		if spec.NeedsIV() {
			iv = strconv.Itoa(spec.IVLen)
		}

		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", v.Index(), spec.Name, spec.KeyLen, iv, spec.Mode)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing schemes: %w", err)
	}

	return nil
}
