// Package mackay implements small forward-error-correction codes over in-memory
// sequences of binary symbols, plus a combinator that chains codes into a pipeline.
//
// Components:
//   - Code[S]: the contract. Encode adds redundancy, Decode tries to undo it.
//   - Repetition: every symbol is sent N times (N odd) and decoded by threshold vote.
//   - Hamming74: 4 data symbols -> 7 symbol codeword, corrects one flipped symbol.
//   - Composition[S]: ordered stages. Encode runs stages first to last,
//     Decode runs each stage's Decode last to first.
//   - Memo: optional result cache over any Code[bool], backed by a byte Provider
//     (e.g. Ristretto, BigCache, Redis).
//
// Alignment:
//
//	Decode on input whose length is not a multiple of the block size returns an
//	empty result (AlignmentMismatch -> empty). DecodeStrict reports *AlignmentError.
//
// Pipeline:
//
//	r3, _ := mackay.NewRepetition(3)
//	p := mackay.NewComposition[bool]().Append(mackay.NewHamming74()).Append(r3)
//	sent := p.Encode(msg)
//	got := p.Decode(sent) // == msg for len(msg)%4 == 0 and at most one flip per block
//
// Hamming74 pads the last group with false and Decode keeps the padding. With
// Repetition before Hamming74 the input to Hamming74 must still be a multiple of
// 4 symbols long, otherwise the round trip drops or adds symbols.
package mackay
