package mackay

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// Codes call them on hot paths.
type Hooks interface {
	// Decode input of the given length was not a multiple of block and was dropped.
	AlignmentMismatch(codec string, length, block int)

	// A data symbol at position (0-3) of the codeword-th codeword was flipped back.
	Corrected(codec string, codeword, position int)

	// A nonzero syndrome pointed at a parity symbol. Data was left unchanged;
	// this is either a single parity error or an undetected multi-symbol error.
	ParitySyndrome(codec string, codeword int, syndrome uint8)

	// Provider returned ok=false on Set (backpressure/eviction).
	// op ∈ {"encode", "decode"}
	MemoRejected(storageKey, op string)

	// Provider failed on Get/Set/Del. The call fell through to the inner code.
	MemoProviderError(op string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) AlignmentMismatch(string, int, int) {}
func (NopHooks) Corrected(string, int, int)         {}
func (NopHooks) ParitySyndrome(string, int, uint8)  {}
func (NopHooks) MemoRejected(string, string)        {}
func (NopHooks) MemoProviderError(string, error)    {}
