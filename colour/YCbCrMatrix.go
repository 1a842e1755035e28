package colour

import (
	"errors"
	"math"

	"github.com/kpfaulkner/ycbcr-go/util"
	log "github.com/sirupsen/logrus"
)

// 16.16 fixed point scale
const fixedOne = 65536

// ConversionMatrix holds RGB <-> YCbCr coefficients in 16.16 fixed point.
// Each row is (bias, c0, c1, c2) and applies as
//
//	out = (bias + c0*in0 + c1*in1 + c2*in2) >> 16
//
// where the inverse direction expects y/cb/cr with their level offsets
// already subtracted. The bias terms fold in a +32768 so the shift rounds
// to nearest instead of truncating.
type ConversionMatrix struct {
	RGBToYCbCr [3][4]int32
	YCbCrToRGB [3][4]int32
	Range      Range
}

// forwardMatrix builds the real-valued RGB -> YCbCr matrix for the given
// weights. Rows map [0,1] RGB to Y in [0,1] and Cb/Cr in [-0.5,0.5].
func forwardMatrix(std Standard) [][]float64 {
	kb := std.Kb
	kr := std.Kr
	kg := 1.0 - kr - kb
	return [][]float64{
		{kr, kg, kb},
		{0.5 * -kr / (1 - kb), 0.5 * -kg / (1 - kb), 0.5},
		{0.5, 0.5 * -kg / (1 - kr), 0.5 * -kb / (1 - kr)},
	}
}

func roundFixed(v float64) int32 {
	return int32(math.Round(v))
}

// ComputeConversionMatrix derives the fixed point coefficient set for the
// given standard and range. Weight pairs that leave the forward matrix
// singular (kb+kr >= 1 and similar) are a configuration error.
func ComputeConversionMatrix(std Standard, rng Range) (*ConversionMatrix, error) {
	fwd := forwardMatrix(std)
	inv := util.InvertMatrix3x3(fwd)
	if inv == nil {
		log.Errorf("Weights kb=%v kr=%v give a singular forward matrix", std.Kb, std.Kr)
		return nil, errors.New("singular forward matrix")
	}

	// Limited range compresses [0,255] into the 219/224 level video swing
	// and offsets luma by 16. Full range keeps the identity scale and only
	// the rounding term in the luma bias.
	lumaScale := 219.0 / 255.0
	chromaScale := 224.0 / 255.0
	lumaBias := int32(16*fixedOne + fixedOne/2)
	if rng == RangeFull {
		lumaScale = 1.0
		chromaScale = 1.0
		lumaBias = fixedOne / 2
	}

	cm := &ConversionMatrix{Range: rng}
	for j := 0; j < 3; j++ {
		cm.RGBToYCbCr[0][j+1] = roundFixed(fwd[0][j] * fixedOne * lumaScale)
		cm.RGBToYCbCr[1][j+1] = roundFixed(fwd[1][j] * fixedOne * chromaScale)
		cm.RGBToYCbCr[2][j+1] = roundFixed(fwd[2][j] * fixedOne * chromaScale)
	}
	cm.RGBToYCbCr[0][0] = lumaBias
	cm.RGBToYCbCr[1][0] = 128*fixedOne + fixedOne/2
	cm.RGBToYCbCr[2][0] = 128*fixedOne + fixedOne/2

	for i := 0; i < 3; i++ {
		cm.YCbCrToRGB[i][0] = fixedOne / 2
		cm.YCbCrToRGB[i][1] = roundFixed(inv[i][0] * fixedOne / lumaScale)
		cm.YCbCrToRGB[i][2] = roundFixed(inv[i][1] * fixedOne / chromaScale)
		cm.YCbCrToRGB[i][3] = roundFixed(inv[i][2] * fixedOne / chromaScale)
	}
	return cm, nil
}
