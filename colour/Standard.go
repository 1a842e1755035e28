package colour

// Standard holds the chroma weighting constants (kb, kr) that define a
// colour primaries standard. The green weight is implied as 1 - kb - kr.
type Standard struct {
	Kb float64
	Kr float64
}

// Range selects between limited (studio swing) and full range 8-bit levels.
type Range int

const (
	// Y in [16,235], Cb/Cr in [16,240]
	RangeLimited Range = iota
	// all channels in [0,255]
	RangeFull
)

var (
	// ITU-R BT.601 (SDTV)
	BT601 = Standard{Kb: 0.114, Kr: 0.299}

	// ITU-R BT.709 (HDTV)
	BT709 = Standard{Kb: 0.0722, Kr: 0.2126}
)
