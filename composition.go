package mackay

// Composition chains codes into one. Stages run in Append order on Encode and in
// reverse order, each with its own Decode, on Decode.
//
// Stages are not length-aware. A stage that pads (Hamming74 on input whose length
// is not a multiple of 4) hands the padding back to the earlier stages on Decode:
// with Repetition(3) then Hamming74 a message of length 1 decodes to an empty
// slice and one of length 3 gains a trailing false. Keep the input of a padding
// stage block-aligned, or use DecodeStrict, which reports the misaligned cases as
// a *StageError.
//
// Append mutates the pipeline for every later call. Build the pipeline before
// sharing it; Composition does no internal locking.
type Composition[S any] struct {
	stages []Code[S]
	log    Logger
}

// NewComposition returns an empty pipeline. An empty pipeline is the identity
// (it still returns a copy of its input).
func NewComposition[S any](opts ...Option) *Composition[S] {
	cfg := newConfig(opts...)
	return &Composition[S]{log: cfg.log}
}

// Append adds c as the last stage. Adjacent stages are not checked for
// compatibility and duplicates are kept.
func (p *Composition[S]) Append(c Code[S]) *Composition[S] {
	if c == nil {
		panic("mackay: nil stage")
	}
	p.stages = append(p.stages, c)
	return p
}

// Len returns the number of stages.
func (p *Composition[S]) Len() int { return len(p.stages) }

// Stages returns a copy of the stage list in Append order.
func (p *Composition[S]) Stages() []Code[S] {
	out := make([]Code[S], len(p.stages))
	copy(out, p.stages)
	return out
}

func (p *Composition[S]) Encode(m []S) []S {
	out := clone(m)
	for _, st := range p.stages {
		out = st.Encode(out)
	}
	return out
}

func (p *Composition[S]) Decode(m []S) []S {
	out := clone(m)
	for i := len(p.stages) - 1; i >= 0; i-- {
		out = p.stages[i].Decode(out)
	}
	return out
}

// DecodeStrict decodes like Decode, but stages implementing StrictCode are decoded
// strictly and the first failure stops the pipeline with a *StageError.
func (p *Composition[S]) DecodeStrict(m []S) ([]S, error) {
	out := clone(m)
	for i := len(p.stages) - 1; i >= 0; i-- {
		st, ok := p.stages[i].(StrictCode[S])
		if !ok {
			out = p.stages[i].Decode(out)
			continue
		}
		var err error
		if out, err = st.DecodeStrict(out); err != nil {
			p.log.Debug("composition decode stopped", Fields{"stage": i, "err": err.Error()})
			return nil, &StageError{Index: i, Err: err}
		}
	}
	return out, nil
}

func clone[S any](m []S) []S {
	out := make([]S, len(m))
	copy(out, m)
	return out
}
