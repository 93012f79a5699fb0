package mackay

import (
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/mackay/internal/util"
	"github.com/unkn0wn-root/mackay/internal/wire"
	pr "github.com/unkn0wn-root/mackay/provider"
)

const (
	opEncode = "encode"
	opDecode = "decode"

	defaultMemoTTL = 10 * time.Minute
)

// SetCostFunc returns the provider cost of storing raw under key.
type SetCostFunc func(key string, raw []byte) int64

// MemoOptions tune Memo. Namespace and Provider are required.
type MemoOptions struct {
	// Namespace identifies the wrapped code, e.g. "r3" or "h74+r3". Two Memos with
	// different inner codes must not share a namespace on the same provider.
	Namespace string
	Provider  pr.Provider

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	TTL            time.Duration // 0 => 10m
	ComputeSetCost SetCostFunc   // default len(raw)
	Disabled       bool          // pass every call straight to the inner code
}

// Memo caches the results of a boolean Code in a byte Provider.
//
// Memo still satisfies the Code contract: a provider failure never surfaces to
// the caller, it only costs a recomputation. Corrupt entries are deleted and
// recomputed.
type Memo struct {
	inner          Code[bool]
	ns             string
	provider       pr.Provider
	log            Logger
	hooks          Hooks
	ttl            time.Duration
	computeSetCost SetCostFunc
	enabled        bool
}

func NewMemo(inner Code[bool], opts MemoOptions) (*Memo, error) {
	if inner == nil {
		return nil, errors.New("mackay: memo inner code is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("mackay: memo provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("mackay: memo namespace is required")
	}

	m := &Memo{
		inner:    inner,
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	m.ttl = coalesce[time.Duration](opts.TTL, defaultMemoTTL)
	if opts.ComputeSetCost != nil {
		m.computeSetCost = opts.ComputeSetCost
	} else {
		m.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return m, nil
}

func (m *Memo) Encode(in []bool) []bool { return m.EncodeContext(context.Background(), in) }
func (m *Memo) Decode(in []bool) []bool { return m.DecodeContext(context.Background(), in) }

// EncodeContext is Encode with ctx passed to the provider.
func (m *Memo) EncodeContext(ctx context.Context, in []bool) []bool {
	return m.do(ctx, opEncode, in, m.inner.Encode)
}

// DecodeContext is Decode with ctx passed to the provider.
func (m *Memo) DecodeContext(ctx context.Context, in []bool) []bool {
	return m.do(ctx, opDecode, in, m.inner.Decode)
}

// Forget drops the cached encode and decode results for in.
func (m *Memo) Forget(ctx context.Context, in []bool) error {
	framed := wire.EncodeSymbols(in)
	return errors.Join(
		m.provider.Del(ctx, m.key(opEncode, framed)),
		m.provider.Del(ctx, m.key(opDecode, framed)),
	)
}

// Close closes the provider.
func (m *Memo) Close(ctx context.Context) error { return m.provider.Close(ctx) }

func (m *Memo) do(ctx context.Context, op string, in []bool, compute func([]bool) []bool) []bool {
	if !m.enabled {
		return compute(in)
	}
	k := m.key(op, wire.EncodeSymbols(in))

	raw, ok, err := m.provider.Get(ctx, k)
	switch {
	case err != nil:
		m.providerError(op, "get", err)
	case ok:
		out, err := wire.DecodeSymbols(raw)
		if err == nil {
			return out
		}
		m.log.Debug("memo dropped corrupt entry", Fields{"key": k})
		if err := m.provider.Del(ctx, k); err != nil {
			m.providerError(op, "del", err)
		}
	}

	out := compute(in)
	framed := wire.EncodeSymbols(out)
	stored, err := m.provider.Set(ctx, k, framed, m.computeSetCost(k, framed), m.ttl)
	if err != nil {
		m.providerError(op, "set", err)
	} else if !stored {
		m.hooks.MemoRejected(k, op)
		m.log.Debug("memo set rejected by provider (pressure)", Fields{"key": k})
	}
	return out
}

func (m *Memo) providerError(op, call string, err error) {
	m.hooks.MemoProviderError(op, err)
	m.log.Warn("memo provider "+call+" failed", Fields{"op": op, "err": err.Error()})
}

func (m *Memo) key(op string, framed []byte) string {
	return util.MemoKey("memo:"+m.ns, op, framed)
}
