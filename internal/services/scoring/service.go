package scoring

import (
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/services/geometry"
)

// Service scores the words formed by a move
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreMove returns the total points for the formed words. Each word is
// located on proposed by checking, for each placement in order, the
// horizontal then the vertical run through it. A word that cannot be
// located contributes nothing.
func (s *Service) ScoreMove(_ model.Board, proposed model.Board, placements []model.Position, words []string) int {
	total := 0
	for _, ws := range s.ScoreWords(proposed, placements, words) {
		total += ws.Score
	}
	return total
}

// ScoreWords is ScoreMove with a per-word breakdown, in the order of words.
// Unlocated words are reported with a zero score at the zero position.
func (s *Service) ScoreWords(proposed model.Board, placements []model.Position, words []string) []model.WordScore {
	result := make([]model.WordScore, 0, len(words))
	for _, text := range words {
		word, ok := locate(proposed, placements, text)
		if !ok {
			result = append(result, model.WordScore{Word: text})
			continue
		}
		result = append(result, model.WordScore{
			Word:  word.Text,
			Start: word.Start,
			Axis:  word.Axis,
			Score: ScoreWord(proposed, word),
		})
	}
	return result
}

// locate finds the on-board occurrence of text through one of the placements
func locate(proposed model.Board, placements []model.Position, text string) (model.Word, bool) {
	for _, p := range placements {
		if w := geometry.WordAt(proposed, p, model.Horizontal); w.Text == text {
			return w, true
		}
		if w := geometry.WordAt(proposed, p, model.Vertical); w.Text == text {
			return w, true
		}
	}
	return model.Word{}, false
}

// ScoreWord sums the word's letter values with letter bonuses applied, then
// applies every word bonus it covers. Bonuses count for every covered cell,
// whether or not its tile was placed this move.
func ScoreWord(b model.Board, word model.Word) int {
	letterSum := 0
	wordMultiplier := 1
	for _, pos := range word.Positions() {
		bonus := model.MultiplierAt(pos)
		letterSum += mustLetterValue(b.Get(pos)) * bonus.LetterFactor()
		wordMultiplier *= bonus.WordFactor()
	}
	return letterSum * wordMultiplier
}

// mustLetterValue panics on letters outside A-Z; boards only hold A-Z by construction
func mustLetterValue(letter rune) int {
	value, err := model.LetterValue(letter)
	if err != nil {
		panic(err)
	}
	return value
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreMove(previous, proposed model.Board, placements []model.Position, words []string) int
	ScoreWords(proposed model.Board, placements []model.Position, words []string) []model.WordScore
}

var _ ServiceInterface = (*Service)(nil)
