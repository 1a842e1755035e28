package options

import (
	"github.com/kpfaulkner/ycbcr-go/colour"
)

type GeneratorOptions struct {
	Standard colour.Standard
	Range    colour.Range
	Profile  bool
}

func NewGeneratorOptions(options *GeneratorOptions) *GeneratorOptions {

	opt := &GeneratorOptions{
		Standard: colour.BT709,
		Range:    colour.RangeLimited,
	}
	if options != nil {
		opt.Standard = options.Standard
		opt.Range = options.Range
		opt.Profile = options.Profile
	}
	return opt
}
