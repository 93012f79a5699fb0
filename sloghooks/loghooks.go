package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/mackay"
)

type Options struct {
	// Sampling to avoid floods on noisy channels; 0/1 = log all.
	CorrectedEvery uint64
	ParityEvery    uint64
	// Optional memo key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	correctedCtr atomic.Uint64
	parityCtr    atomic.Uint64
}

var _ mackay.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) AlignmentMismatch(codec string, length, block int) {
	if h.l == nil {
		return
	}
	h.l.Info("mackay.alignment_mismatch",
		"codec", codec,
		"len", length,
		"block", block)
}

func (h *Hooks) Corrected(codec string, codeword, position int) {
	if h.l == nil || !sample(h.opts.CorrectedEvery, &h.correctedCtr) {
		return
	}
	h.l.Debug("mackay.corrected",
		"codec", codec,
		"codeword", codeword,
		"position", position)
}

func (h *Hooks) ParitySyndrome(codec string, codeword int, syndrome uint8) {
	if h.l == nil || !sample(h.opts.ParityEvery, &h.parityCtr) {
		return
	}
	h.l.Debug("mackay.parity_syndrome",
		"codec", codec,
		"codeword", codeword,
		"syndrome", syndrome)
}

func (h *Hooks) MemoRejected(storageKey, op string) {
	if h.l == nil {
		return
	}
	h.l.Warn("mackay.memo_rejected",
		"key", h.redact(storageKey),
		"op", op)
}

func (h *Hooks) MemoProviderError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("mackay.memo_provider_error",
		"op", op,
		"err", err)
}
