package testutil

import (
	"context"
	"time"

	pr "github.com/unkn0wn-root/mackay/provider"
)

// FailingProvider fails every call with Err.
type FailingProvider struct{ Err error }

var _ pr.Provider = FailingProvider{}

func (p FailingProvider) Get(context.Context, string) ([]byte, bool, error) { return nil, false, p.Err }
func (p FailingProvider) Set(context.Context, string, []byte, int64, time.Duration) (bool, error) {
	return false, p.Err
}
func (p FailingProvider) Del(context.Context, string) error { return p.Err }
func (p FailingProvider) Close(context.Context) error       { return nil }
