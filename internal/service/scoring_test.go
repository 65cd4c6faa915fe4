package service

import (
	"testing"

	"github.com/kvnhng/quizmint/internal/model"
)

func questionsWithCorrect(indices ...int) []model.Question {
	qs := make([]model.Question, len(indices))
	for i, idx := range indices {
		qs[i] = model.Question{
			ID:           "q",
			Question:     "?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: idx,
		}
	}
	return qs
}

func TestScoreAnswers_PerfectScoreRoundTrip(t *testing.T) {
	qs := questionsWithCorrect(0, 1, 2, 3, 1)
	answers := make([]int, len(qs))
	for i, q := range qs {
		answers[i] = q.CorrectIndex
	}

	if got := ScoreAnswers(qs, answers); got != len(qs) {
		t.Fatalf("expected perfect score %d, got %d", len(qs), got)
	}
}

func TestScoreAnswers_CountsOnlyMatches(t *testing.T) {
	qs := questionsWithCorrect(0, 1, 2)
	if got := ScoreAnswers(qs, []int{0, 3, 2}); got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}
}

func TestScoreAnswers_IgnoresExtraTrailingAnswers(t *testing.T) {
	qs := questionsWithCorrect(1, 1)
	if got := ScoreAnswers(qs, []int{1, 1, 3, 0, 2}); got != 2 {
		t.Fatalf("expected score 2 with trailing answers ignored, got %d", got)
	}
}

func TestScoreAnswers_MissingAnswersAreNonMatching(t *testing.T) {
	qs := questionsWithCorrect(0, 1, 2, 3)
	if got := ScoreAnswers(qs, []int{0}); got != 1 {
		t.Fatalf("expected score 1 with unanswered questions non-matching, got %d", got)
	}
	if got := ScoreAnswers(qs, nil); got != 0 {
		t.Fatalf("expected score 0 with no answers, got %d", got)
	}
}

func TestScoreAnswers_EmptyQuiz(t *testing.T) {
	if got := ScoreAnswers(nil, []int{1, 2}); got != 0 {
		t.Fatalf("expected score 0 for empty quiz, got %d", got)
	}
}
