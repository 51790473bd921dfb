package profile

import (
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// PastQuestionsCap is the hard ceiling for remembered questions.
	PastQuestionsCap = 20
	// PastQuestionsKeep is how many recent questions survive a trim.
	PastQuestionsKeep = 10
)

// UserContext is the light per-session memory injected into every outbound
// request: a detected display name and a rolling list of prior questions.
type UserContext struct {
	mu            sync.RWMutex
	name          string
	pastQuestions []string
}

func NewUserContext() *UserContext {
	return &UserContext{}
}

// Name returns the detected display name, empty when none was found yet.
func (uc *UserContext) Name() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.name
}

// SetNameOnce stores the name if none is set yet. First detected value wins;
// later candidates are ignored. Reports whether the name was stored.
func (uc *UserContext) SetNameOnce(name string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.name != "" || name == "" {
		return false
	}
	uc.name = name
	return true
}

// PastQuestions returns a copy of the remembered questions, oldest first.
func (uc *UserContext) PastQuestions() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]string, len(uc.pastQuestions))
	copy(out, uc.pastQuestions)
	return out
}

// RecordQuestion appends a question. When the list grows past the cap it is
// cut down to the most recent PastQuestionsKeep entries.
func (uc *UserContext) RecordQuestion(q string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pastQuestions = append(uc.pastQuestions, q)
	if len(uc.pastQuestions) > PastQuestionsCap {
		uc.pastQuestions = uc.pastQuestions[len(uc.pastQuestions)-PastQuestionsKeep:]
	}
}

// minNameLength rejects single-character captures.
const minNameLength = 2

// DetectName scans a message for a self-introduction and stores the candidate
// name. No-op when a name is already set or nothing matches.
func DetectName(message string, uc *UserContext) {
	if uc.Name() != "" {
		return
	}
	if name := ExtractName(message); name != "" {
		uc.SetNameOnce(name)
	}
}

// ExtractName runs the introduction patterns against a message and returns
// the captured name, empty when nothing matches.
func ExtractName(message string) string {
	for _, p := range namePatterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil || len(m) <= p.group {
			continue
		}
		name := cutAtStopWord(m[p.group])
		if utf8.RuneCountInString(name) >= minNameLength {
			return name
		}
	}
	return ""
}

// captureStopWords mark where a greedy capture stops being a name. Without
// this "I'm Renae and I have dry skin" would store the whole clause.
var captureStopWords = map[string]struct{}{
	"and":     {},
	"but":     {},
	"so":      {},
	"because": {},
	"here":    {},
	"from":    {},
	"with":    {},
	"a":       {},
	"an":      {},
	"the":     {},
	"not":     {},
	"just":    {},
	"really":  {},
	"very":    {},
}

func cutAtStopWord(raw string) string {
	fields := strings.Fields(raw)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := captureStopWords[strings.ToLower(f)]; stop {
			break
		}
		kept = append(kept, f)
	}
	return strings.Trim(strings.Join(kept, " "), "'- ")
}
