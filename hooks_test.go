package mackay

import "sync"

type alignmentEvent struct {
	codec         string
	length, block int
}

type correctedEvent struct {
	codec              string
	codeword, position int
}

type recordingHooks struct {
	mu             sync.Mutex
	alignment      []alignmentEvent
	corrected      []correctedEvent
	parity         []uint8
	memoRejected   []string
	providerErrors []error
}

var _ Hooks = (*recordingHooks)(nil)

func (h *recordingHooks) AlignmentMismatch(codec string, length, block int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.alignment = append(h.alignment, alignmentEvent{codec, length, block})
}

func (h *recordingHooks) Corrected(codec string, codeword, position int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.corrected = append(h.corrected, correctedEvent{codec, codeword, position})
}

func (h *recordingHooks) ParitySyndrome(_ string, _ int, syndrome uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.parity = append(h.parity, syndrome)
}

func (h *recordingHooks) MemoRejected(key, _ string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.memoRejected = append(h.memoRejected, key)
}

func (h *recordingHooks) MemoProviderError(_ string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.providerErrors = append(h.providerErrors, err)
}

// recordingLogger keeps messages per level.
type recordingLogger struct {
	mu   sync.Mutex
	msgs map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{msgs: make(map[string][]string)}
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs[level] = append(l.msgs[level], msg)
}

func (l *recordingLogger) Debug(msg string, _ Fields) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ Fields)  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ Fields)  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ Fields) { l.add("error", msg) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.msgs[level])
}
