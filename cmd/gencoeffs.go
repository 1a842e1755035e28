package main

import (
	"os"

	"github.com/kpfaulkner/ycbcr-go/colour"
	"github.com/kpfaulkner/ycbcr-go/options"
	log "github.com/sirupsen/logrus"
)

func main() {

	// ITU-R BT.709. Swap in colour.BT601 for SDTV coefficients.
	opts := options.NewGeneratorOptions(&options.GeneratorOptions{
		Standard: colour.BT709,
		Range:    colour.RangeLimited,
	})

	cm, err := colour.ComputeConversionMatrix(opts.Standard, opts.Range)
	if err != nil {
		log.Fatalf("Error deriving coefficients: %v", err)
	}

	if err := cm.WriteExpressions(os.Stdout); err != nil {
		log.Fatalf("Error writing expressions: %v", err)
	}
}
