package quiz

import "errors"

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrNotInProgress   = errors.New("quiz is not in progress")
	ErrAtFirstQuestion = errors.New("already at the first question")
	ErrNotFinished     = errors.New("quiz is not finished")
)

// Session walks a learner through an ordered question list one question at a
// time. Every index must be visited to reach StateFinished; the completion
// side effects belong to the caller and must fire only when Next reports the
// transition into StateFinished.
type Session struct {
	Total   int
	State   State
	Index   int
	Answers map[int]string
}

// NewSession refuses an empty question list: a module with zero questions
// does not offer a quiz at all.
func NewSession(total int) (*Session, error) {
	if total <= 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		Total:   total,
		State:   StateNotStarted,
		Answers: make(map[int]string),
	}, nil
}

// Start enters the first question and discards any previously recorded
// answers.
func (s *Session) Start() {
	s.State = StateInProgress
	s.Index = 0
	s.Answers = make(map[int]string)
}

// Next records the selected label for the current question and advances.
// It returns true exactly when this call transitioned the session into
// StateFinished.
func (s *Session) Next(selected string) (bool, error) {
	if s.State != StateInProgress {
		return false, ErrNotInProgress
	}

	s.Answers[s.Index] = selected
	if s.Index == s.Total-1 {
		s.State = StateFinished
		return true, nil
	}
	s.Index++
	return false, nil
}

// Previous steps back one question without discarding the answer recorded at
// the current index.
func (s *Session) Previous() error {
	if s.State != StateInProgress {
		return ErrNotInProgress
	}
	if s.Index == 0 {
		return ErrAtFirstQuestion
	}
	s.Index--
	return nil
}

// Score counts recorded answers that match the correct labels. An index that
// was never visited holds no answer and never matches.
func (s *Session) Score(correct []string) (int, float64) {
	score := 0
	for i, label := range correct {
		if answer, ok := s.Answers[i]; ok && answer == label {
			score++
		}
	}
	percentage := float64(score) / float64(s.Total) * 100
	return score, percentage
}

// Retake returns a finished session to StateNotStarted for a fresh,
// independent attempt.
func (s *Session) Retake() error {
	if s.State != StateFinished {
		return ErrNotFinished
	}
	s.State = StateNotStarted
	s.Index = 0
	s.Answers = make(map[int]string)
	return nil
}
