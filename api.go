package mackay

// Code is a forward transform over symbol sequences and its best-effort inverse.
//
// Both operations are total: an empty input yields an empty output, and every call
// returns a freshly allocated slice that does not alias the input. Implementations
// carry no per-call state, so a constructed Code can be shared by concurrent callers.
type Code[S any] interface {
	Encode(m []S) []S
	Decode(m []S) []S
}

// StrictCode is a Code that can report why decoding could not proceed instead of
// degrading to an empty result.
type StrictCode[S any] interface {
	Code[S]
	DecodeStrict(m []S) ([]S, error)
}

var (
	_ StrictCode[bool] = (*Repetition)(nil)
	_ StrictCode[bool] = (*Hamming74)(nil)
	_ StrictCode[bool] = (*Composition[bool])(nil)
	_ Code[bool]       = (*Memo)(nil)
)
