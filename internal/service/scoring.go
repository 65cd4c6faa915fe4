package service

import "github.com/kvnhng/quizmint/internal/model"

// ScoreAnswers counts positions where the selected option matches the
// question's correct index. Deterministic and pure. Positions past the end of
// answers count as unanswered (non-matching); extra trailing answers are
// ignored.
func ScoreAnswers(questions []model.Question, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}
