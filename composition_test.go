package mackay

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// notCode inverts every symbol both ways. It has no DecodeStrict, so
// Composition must fall back to Decode.
type notCode struct{}

func (notCode) Encode(m []bool) []bool {
	out := make([]bool, len(m))
	for i, s := range m {
		out[i] = !s
	}
	return out
}

func (c notCode) Decode(m []bool) []bool { return c.Encode(m) }

func TestCompositionEmptyInput(t *testing.T) {
	r3 := mustRepetition(t, 3)
	p := NewComposition[bool]().Append(r3).Append(NewHamming74())

	if got := p.Encode([]bool{}); got == nil || len(got) != 0 {
		t.Fatalf("Encode([]) = %#v, want []", got)
	}
	if got := p.Decode([]bool{}); got == nil || len(got) != 0 {
		t.Fatalf("Decode([]) = %#v, want []", got)
	}
}

func TestCompositionIdentity(t *testing.T) {
	p := NewComposition[bool]()
	in := []bool{true, false, true}
	out := p.Encode(in)
	if !slices.Equal(out, in) {
		t.Fatalf("empty pipeline Encode = %v", out)
	}
	out[0] = false
	if !in[0] {
		t.Fatalf("empty pipeline output aliases input")
	}
	if p.Len() != 0 || len(p.Stages()) != 0 {
		t.Fatalf("Len = %d", p.Len())
	}
}

func TestCompositionEncodeOrder(t *testing.T) {
	r3 := mustRepetition(t, 3)
	h := NewHamming74()
	p := NewComposition[bool]().Append(r3).Append(h)

	m := []bool{true, false, true, true}
	want := h.Encode(r3.Encode(m))
	if got := p.Encode(m); !slices.Equal(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
	if p.Len() != 2 {
		t.Fatalf("Len = %d", p.Len())
	}
	st := p.Stages()
	if st[0] != Code[bool](r3) || st[1] != Code[bool](h) {
		t.Fatalf("Stages order = %v", st)
	}
}

func TestCompositionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	r3 := mustRepetition(t, 3)
	h := NewHamming74()

	pipelines := map[string]*Composition[bool]{
		"r3+h74":  NewComposition[bool]().Append(r3).Append(h),
		"h74+r3":  NewComposition[bool]().Append(h).Append(r3),
		"h74+not": NewComposition[bool]().Append(h).Append(notCode{}),
		"nested":  NewComposition[bool]().Append(NewComposition[bool]().Append(h)).Append(r3),
	}
	for name, p := range pipelines {
		for groups := 0; groups < 16; groups++ {
			// r3 output is 3x the input; 4*groups keeps every Hamming group full
			m := randomBits(rng, 4*groups)
			got := p.Decode(p.Encode(m))
			if !slices.Equal(got, m) {
				t.Fatalf("%s: round trip %v -> %v", name, m, got)
			}
		}
	}
}

func TestCompositionDecodeInvertsNotReencodes(t *testing.T) {
	r3 := mustRepetition(t, 3)
	p := NewComposition[bool]().Append(r3)
	enc := p.Encode([]bool{true, false})
	got := p.Decode(enc)
	if len(got) != 2 {
		t.Fatalf("Decode returned %d symbols; decode stage must shrink the input", len(got))
	}
}

func TestCompositionCorrectsChannelErrors(t *testing.T) {
	h := NewHamming74()
	r5 := mustRepetition(t, 5)
	p := NewComposition[bool]().Append(h).Append(r5)

	m := []bool{true, false, false, true, false, true, true, false}
	enc := p.Encode(m)
	// single flips in repetition blocks 0 and 5 are voted away
	enc[0] = !enc[0]
	enc[25] = !enc[25]
	// three flips swamp block 2; Hamming repairs the resulting codeword error
	for i := 10; i < 13; i++ {
		enc[i] = !enc[i]
	}
	if got := p.Decode(enc); !slices.Equal(got, m) {
		t.Fatalf("Decode with flips = %v, want %v", got, m)
	}
}

func TestCompositionDecodeStrict(t *testing.T) {
	r3 := mustRepetition(t, 3)
	p := NewComposition[bool]().Append(NewHamming74()).Append(notCode{}).Append(r3)

	m := []bool{true, true, false, false}
	got, err := p.DecodeStrict(p.Encode(m))
	if err != nil || !slices.Equal(got, m) {
		t.Fatalf("DecodeStrict = %v, %v", got, err)
	}

	_, err = p.DecodeStrict([]bool{true, true})
	var se *StageError
	if !errors.As(err, &se) || se.Index != 2 {
		t.Fatalf("DecodeStrict err = %#v, want stage 2", err)
	}
	if !errors.Is(err, ErrAlignment) {
		t.Fatalf("StageError does not unwrap to ErrAlignment: %v", err)
	}

	// r3 aligned (6 -> 2) but hamming needs 7
	_, err = p.DecodeStrict(make([]bool, 6))
	if !errors.As(err, &se) || se.Index != 0 {
		t.Fatalf("DecodeStrict err = %#v, want stage 0", err)
	}
}

func TestCompositionPaddedRepetitionThenHamming(t *testing.T) {
	r3 := mustRepetition(t, 3)
	p := NewComposition[bool]().Append(r3).Append(NewHamming74())

	cases := []struct {
		name   string
		in     []bool
		want   []bool
		strict bool // DecodeStrict fails at stage 0
	}{
		// 3 symbols pad to 4; r3 cannot split 4
		{"len1", []bool{true}, []bool{}, true},
		// 9 symbols pad to 12, which r3 splits into 4 blocks
		{"len3", []bool{true, false, true}, []bool{true, false, true, false}, false},
		// 15 symbols pad to 16
		{"len5", []bool{true, true, true, true, true}, []bool{}, true},
		{"len4", []bool{true, false, false, true}, []bool{true, false, false, true}, false},
	}
	for _, tc := range cases {
		enc := p.Encode(tc.in)
		got := p.Decode(enc)
		if got == nil || !slices.Equal(got, tc.want) {
			t.Fatalf("%s: Decode = %#v, want %v", tc.name, got, tc.want)
		}

		got, err := p.DecodeStrict(enc)
		if !tc.strict {
			if err != nil || !slices.Equal(got, tc.want) {
				t.Fatalf("%s: DecodeStrict = %v, %v", tc.name, got, err)
			}
			continue
		}
		var se *StageError
		if !errors.As(err, &se) || se.Index != 0 {
			t.Fatalf("%s: DecodeStrict err = %#v, want stage 0", tc.name, err)
		}
		var ae *AlignmentError
		if !errors.As(err, &ae) || ae.Codec != "repetition" || ae.Length%3 == 0 {
			t.Fatalf("%s: DecodeStrict err = %#v, want repetition alignment", tc.name, err)
		}
	}
}

func TestCompositionAppendNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewComposition[bool]().Append(nil)
}

func TestCompositionGenericSymbols(t *testing.T) {
	p := NewComposition[int]().Append(shiftCode{1}).Append(shiftCode{10})
	enc := p.Encode([]int{1, 2})
	if !slices.Equal(enc, []int{12, 13}) {
		t.Fatalf("Encode = %v", enc)
	}
	if got := p.Decode(enc); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Decode = %v", got)
	}
}

type shiftCode struct{ by int }

func (c shiftCode) Encode(m []int) []int {
	out := make([]int, len(m))
	for i, v := range m {
		out[i] = v + c.by
	}
	return out
}

func (c shiftCode) Decode(m []int) []int {
	out := make([]int, len(m))
	for i, v := range m {
		out[i] = v - c.by
	}
	return out
}
