package mackay

const (
	hammingName = "hamming74"

	hammingData  = 4
	hammingBlock = 7
)

// syndromeFlip maps a 3-bit syndrome to the data position to flip, or -1.
// Syndromes 001, 010 and 100 point at a parity symbol and leave data alone.
var syndromeFlip = [8]int{
	0b000: -1,
	0b001: -1,
	0b010: -1,
	0b011: 2,
	0b100: -1,
	0b101: 1,
	0b110: 0,
	0b111: 3,
}

// Hamming74 encodes 4 data symbols into a 7 symbol codeword
//
//	d0 d1 d2 d3 p0 p1 p2,  p_j = XOR of the data symbols other than d_j
//
// and corrects at most one flipped symbol per codeword. Two or more flips are
// neither detected nor reported; they decode to whatever the syndrome table says.
type Hamming74 struct {
	log   Logger
	hooks Hooks
}

// NewHamming74 returns the Hamming(7,4) code. It cannot fail.
func NewHamming74(opts ...Option) *Hamming74 {
	cfg := newConfig(opts...)
	return &Hamming74{log: cfg.log, hooks: cfg.hooks}
}

// Report describes what DecodeReport did to each codeword.
type Report struct {
	Codewords int
	// Corrected lists codeword indices where a data symbol was flipped back.
	Corrected []int
	// ParitySyndromes counts codewords whose nonzero syndrome pointed at a parity
	// symbol. Data is kept as received for those.
	ParitySyndromes int
}

// Clean reports whether every codeword had a zero syndrome.
func (r Report) Clean() bool { return len(r.Corrected) == 0 && r.ParitySyndromes == 0 }

// Encode emits one codeword per group of 4 symbols. A trailing group shorter than
// 4 is padded with false before parity is computed, so len(out) == 7*ceil(len(m)/4)
// and Decode returns the padded length.
//
// Padding is not removed on Decode. Stages placed before Hamming74 in a
// Composition see the padded length, so their output length must be a multiple
// of 4 for the pipeline to round trip.
func (h *Hamming74) Encode(m []bool) []bool {
	groups := (len(m) + hammingData - 1) / hammingData
	out := make([]bool, 0, groups*hammingBlock)

	var d [hammingData]bool
	for g := 0; g < groups; g++ {
		d = [hammingData]bool{}
		copy(d[:], m[g*hammingData:min(len(m), (g+1)*hammingData)])

		out = append(out, d[:]...)
		for j := 0; j < 3; j++ {
			out = append(out, parity(d, j))
		}
	}
	return out
}

// Decode corrects each codeword by syndrome lookup and returns the data symbols.
//
// AlignmentMismatch -> empty result: if len(m) is not a multiple of 7 the input is
// dropped and an empty slice is returned. Use DecodeStrict to get the error instead.
func (h *Hamming74) Decode(m []bool) []bool {
	out, _, err := h.DecodeReport(m)
	if err != nil {
		return []bool{}
	}
	return out
}

// DecodeStrict is Decode with misalignment reported as *AlignmentError.
func (h *Hamming74) DecodeStrict(m []bool) ([]bool, error) {
	out, _, err := h.DecodeReport(m)
	return out, err
}

// DecodeReport is DecodeStrict plus a per-call Report. The decoded data is the
// same as Decode returns for aligned input.
func (h *Hamming74) DecodeReport(m []bool) ([]bool, Report, error) {
	if len(m)%hammingBlock != 0 {
		h.hooks.AlignmentMismatch(hammingName, len(m), hammingBlock)
		h.log.Debug("hamming74 decode dropped misaligned input", Fields{"len": len(m)})
		return nil, Report{}, &AlignmentError{Codec: hammingName, Length: len(m), Block: hammingBlock}
	}

	rep := Report{Codewords: len(m) / hammingBlock}
	out := make([]bool, 0, rep.Codewords*hammingData)

	var d [hammingData]bool
	for cw := 0; cw < rep.Codewords; cw++ {
		word := m[cw*hammingBlock : (cw+1)*hammingBlock]
		copy(d[:], word[:hammingData])

		var syndrome uint8
		for j := 0; j < 3; j++ {
			if word[hammingData+j] != parity(d, j) {
				syndrome |= 1 << j
			}
		}

		switch pos := syndromeFlip[syndrome]; {
		case pos >= 0:
			d[pos] = !d[pos]
			rep.Corrected = append(rep.Corrected, cw)
			h.hooks.Corrected(hammingName, cw, pos)
		case syndrome != 0:
			rep.ParitySyndromes++
			h.hooks.ParitySyndrome(hammingName, cw, syndrome)
		}
		out = append(out, d[:]...)
	}

	if !rep.Clean() {
		h.log.Debug("hamming74 decode applied corrections", Fields{
			"codewords": rep.Codewords,
			"corrected": len(rep.Corrected),
			"parity":    rep.ParitySyndromes,
		})
	}
	return out, rep, nil
}

// parity returns the XOR of the three data symbols other than d[j].
func parity(d [hammingData]bool, j int) bool {
	var p bool
	for i, s := range d {
		if i != j {
			p = p != s
		}
	}
	return p
}
