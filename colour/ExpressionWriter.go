package colour

import (
	"fmt"
	"io"
	"strings"
)

// WriteExpressions emits the coefficients as integer-only expressions ready
// to paste into code without floating point support.
func (cm *ConversionMatrix) WriteExpressions(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\nRGB to YCbCr:\n"); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		row := cm.RGBToYCbCr[i]
		if _, err := fmt.Fprintf(w, "(%d + %d*r + %d*g + %d*b)>>16\n", row[0], row[1], row[2], row[3]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nYCbCr to RGB:\n"); err != nil {
		return err
	}
	// full range has no luma level offset
	if cm.Range == RangeLimited {
		if _, err := fmt.Fprintf(w, "y -= 16\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "cb -= 128\ncr -= 128\n"); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		row := cm.YCbCrToRGB[i]
		if _, err := fmt.Fprintf(w, "(%d + %d*y + %d*cb + %d*cr)>>16\n", row[0], row[1], row[2], row[3]); err != nil {
			return err
		}
	}
	return nil
}

// Expressions returns the formatted expression block as a string.
func (cm *ConversionMatrix) Expressions() string {
	var sb strings.Builder
	cm.WriteExpressions(&sb)
	return sb.String()
}
