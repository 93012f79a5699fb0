// Package layout describes a boolean code pipeline as data, so it can be stored
// with any codec.Codec and rebuilt into a *mackay.Composition[bool].
//
//	l := layout.Layout{Name: "h74+r3", Stages: []layout.Stage{
//	    {Kind: layout.KindHamming74},
//	    {Kind: layout.KindRepetition, N: 3},
//	}}
//	b, _ := codec.JSON[layout.Layout]{}.Encode(l)
//	p, err := layout.Load(codec.JSON[layout.Layout]{}, b)
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/mackay"
	"github.com/unkn0wn-root/mackay/codec"
)

const (
	KindRepetition = "repetition"
	KindHamming74  = "hamming74"
)

// Stage is one pipeline stage. N is the repetition factor and must be zero for
// stages that take no parameter.
type Stage struct {
	Kind string `json:"kind"`
	N    int    `json:"n,omitempty"`
}

// Layout lists stages in encode order.
type Layout struct {
	Name   string  `json:"name,omitempty"`
	Stages []Stage `json:"stages"`
}

// Validate reports the first invalid stage. An empty layout is valid and
// builds the identity pipeline.
func (l Layout) Validate() error {
	for i, st := range l.Stages {
		if _, err := st.build(); err != nil {
			return fmt.Errorf("layout: stage %d: %w", i, err)
		}
	}
	return nil
}

// String renders the stages as e.g. "hamming74+r3", or "identity" when empty.
func (l Layout) String() string {
	if len(l.Stages) == 0 {
		return "identity"
	}
	parts := make([]string, len(l.Stages))
	for i, st := range l.Stages {
		switch st.Kind {
		case KindRepetition:
			parts[i] = "r" + strconv.Itoa(st.N)
		default:
			parts[i] = st.Kind
		}
	}
	return strings.Join(parts, "+")
}

// Build validates l and returns the pipeline it describes. opts are passed to
// every stage and to the Composition itself.
func Build(l Layout, opts ...mackay.Option) (*mackay.Composition[bool], error) {
	p := mackay.NewComposition[bool](opts...)
	for i, st := range l.Stages {
		c, err := st.build(opts...)
		if err != nil {
			return nil, fmt.Errorf("layout: stage %d: %w", i, err)
		}
		p.Append(c)
	}
	return p, nil
}

// Load decodes a layout with c and builds it.
func Load(c codec.Codec[Layout], b []byte, opts ...mackay.Option) (*mackay.Composition[bool], error) {
	l, err := c.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	return Build(l, opts...)
}

func (st Stage) build(opts ...mackay.Option) (mackay.Code[bool], error) {
	switch st.Kind {
	case KindRepetition:
		r, err := mackay.NewRepetition(st.N, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindHamming74:
		if st.N != 0 {
			return nil, fmt.Errorf("%s takes no n (got %d)", st.Kind, st.N)
		}
		return mackay.NewHamming74(opts...), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", st.Kind)
	}
}
