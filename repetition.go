package mackay

const repetitionName = "repetition"

// Repetition is the R_N code: every symbol is repeated N times, N odd and >= 1.
// The zero value is not usable; construct with NewRepetition.
type Repetition struct {
	n         int
	threshold Threshold
	log       Logger
	hooks     Hooks
}

// NewRepetition returns an R_N code. It fails with *ConstructionError when n is
// even or less than 1.
func NewRepetition(n int, opts ...Option) (*Repetition, error) {
	if n < 1 {
		return nil, &ConstructionError{Param: "repetition factor", Value: n, Reason: "must be >= 1"}
	}
	if n%2 == 0 {
		return nil, &ConstructionError{Param: "repetition factor", Value: n, Reason: "must be odd"}
	}
	cfg := newConfig(opts...)
	return &Repetition{
		n:         n,
		threshold: cfg.threshold,
		log:       cfg.log,
		hooks:     cfg.hooks,
	}, nil
}

// N returns the repetition factor.
func (r *Repetition) N() int { return r.n }

// Threshold returns the vote policy used by Decode.
func (r *Repetition) Threshold() Threshold { return r.threshold }

// Encode emits N copies of every symbol, in order. len(out) == N*len(m).
func (r *Repetition) Encode(m []bool) []bool {
	out := make([]bool, 0, r.n*len(m))
	for _, s := range m {
		for i := 0; i < r.n; i++ {
			out = append(out, s)
		}
	}
	return out
}

// Decode votes every block of N symbols back to one symbol.
//
// AlignmentMismatch -> empty result: if len(m) is not a multiple of N the input is
// dropped and an empty slice is returned. Use DecodeStrict to get the error instead.
func (r *Repetition) Decode(m []bool) []bool {
	out, err := r.DecodeStrict(m)
	if err != nil {
		return []bool{}
	}
	return out
}

// DecodeStrict is Decode with misalignment reported as *AlignmentError.
func (r *Repetition) DecodeStrict(m []bool) ([]bool, error) {
	if len(m)%r.n != 0 {
		r.hooks.AlignmentMismatch(repetitionName, len(m), r.n)
		r.log.Debug("repetition decode dropped misaligned input", Fields{"len": len(m), "n": r.n})
		return nil, &AlignmentError{Codec: repetitionName, Length: len(m), Block: r.n}
	}

	out := make([]bool, 0, len(m)/r.n)
	for off := 0; off < len(m); off += r.n {
		count := 0
		for _, s := range m[off : off+r.n] {
			if s {
				count++
			}
		}
		out = append(out, r.vote(count))
	}
	return out, nil
}

func (r *Repetition) vote(count int) bool {
	half := r.n / 2
	if r.threshold == StrictMajority {
		return count > half
	}
	// N=1 has half == 0, which would decode every block to true.
	return count >= max(half, 1)
}
