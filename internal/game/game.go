// Package game implements the word scramble round: lexicon selection,
// scrambling, scoring, and end-of-round persistence.
package game

import (
	"math"
	"math/rand"
	"strings"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

// Entry pairs a word with its hint.
type Entry struct {
	Word string
	Hint string
}

var lexicon = []Entry{
	{"MOTIVATION", "The drive to achieve goals"},
	{"SUCCESS", "Achievement of desired outcomes"},
	{"DREAM", "An aspiration or ambition"},
	{"FOCUS", "Concentrated attention"},
	{"GROWTH", "Process of developing"},
	{"COURAGE", "Bravery in facing challenges"},
	{"WISDOM", "Knowledge gained through experience"},
	{"PASSION", "Strong enthusiasm for something"},
	{"ACHIEVE", "To successfully reach a goal"},
	{"INSPIRE", "To fill with urge to do something"},
	{"CREATE", "To bring something into existence"},
	{"BELIEVE", "To have confidence in"},
	{"STRENGTH", "Physical or mental power"},
	{"CHALLENGE", "A demanding task or situation"},
	{"OPPORTUNITY", "A chance for advancement"},
	{"PERSISTENCE", "Continuing despite difficulties"},
	{"EXCELLENCE", "Being outstanding in quality"},
	{"PROGRESS", "Forward movement toward a goal"},
	{"CONFIDENCE", "Belief in oneself"},
	{"DETERMINATION", "Firmness of purpose"},
	{"ADVENTURE", "An exciting experience"},
	{"FREEDOM", "The state of being free"},
	{"HAPPINESS", "A feeling of joy"},
	{"KINDNESS", "Being friendly and considerate"},
	{"LEARNING", "Acquiring knowledge or skills"},
	{"PATIENCE", "Ability to wait calmly"},
	{"RESPECT", "Admiration for someone"},
	{"TEAMWORK", "Working together effectively"},
	{"VICTORY", "Success in struggle or contest"},
	{"WONDER", "Feeling of amazement"},
	{"ENERGY", "Power and vitality"},
	{"BALANCE", "State of equilibrium"},
	{"CLARITY", "Quality of being clear"},
	{"DISCIPLINE", "Training to act in accordance with rules"},
	{"EMPATHY", "Understanding others' feelings"},
	{"FLEXIBILITY", "Ability to adapt to changes"},
	{"GRATITUDE", "Feeling of thankfulness"},
	{"HONESTY", "Quality of being truthful"},
	{"INNOVATION", "Introduction of new ideas"},
	{"JOURNEY", "A process of personal change"},
}

// Difficulty selects the word length band, scoring multiplier, and the
// time bonus granted per correct answer.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type difficultyParams struct {
	TimeBonus  int
	Multiplier float64
	MinLen     int
	MaxLen     int
}

var difficulties = map[Difficulty]difficultyParams{
	Easy:   {TimeBonus: 5, Multiplier: 1, MinLen: 4, MaxLen: 6},
	Medium: {TimeBonus: 3, Multiplier: 1.5, MinLen: 5, MaxLen: 8},
	Hard:   {TimeBonus: 2, Multiplier: 2, MinLen: 7, MaxLen: 12},
}

// ValidDifficulty reports whether s names a known difficulty level.
func ValidDifficulty(s string) bool {
	_, ok := difficulties[Difficulty(s)]
	return ok
}

// Lexicon returns the full word table.
func Lexicon() []Entry {
	out := make([]Entry, len(lexicon))
	copy(out, lexicon)
	return out
}

// Session is one timed round. The clock is driven externally through
// Tick, so the UI owns the cadence and pause simply means not ticking.
type Session struct {
	store      storage.Provider
	difficulty Difficulty
	intn       func(int) int

	Active         bool
	Score          int
	TimeLeft       int
	WordsCompleted int
	Paused         bool

	current   Entry
	scrambled string
}

func NewSession(store storage.Provider, difficulty Difficulty) *Session {
	if _, ok := difficulties[difficulty]; !ok {
		difficulty = Medium
	}
	return &Session{
		store:      store,
		difficulty: difficulty,
		intn:       rand.Intn,
	}
}

func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Start resets the round state and deals the first word.
func (s *Session) Start() {
	s.Active = true
	s.Paused = false
	s.Score = 0
	s.TimeLeft = constants.GameRoundSeconds
	s.WordsCompleted = 0
	s.nextWord()
}

// Word returns the scrambled form of the current word.
func (s *Session) Word() string { return s.scrambled }

// Hint returns the current word's hint text.
func (s *Session) Hint() string { return s.current.Hint }

// Answer reveals the current word. Used after the round ends.
func (s *Session) Answer() string { return s.current.Word }

// nextWord deals a word from the difficulty's length band, preferring
// words not yet completed today; when all are used, any band word may
// repeat.
func (s *Session) nextWord() {
	params := difficulties[s.difficulty]
	var pool []Entry
	for _, e := range lexicon {
		if n := len(e.Word); n >= params.MinLen && n <= params.MaxLen {
			pool = append(pool, e)
		}
	}

	completed := make(map[string]bool)
	for _, w := range s.store.GetGameData().DailyWordsCompleted {
		completed[w] = true
	}
	var fresh []Entry
	for _, e := range pool {
		if !completed[e.Word] {
			fresh = append(fresh, e)
		}
	}
	if len(fresh) > 0 {
		pool = fresh
	}

	s.current = pool[s.intn(len(pool))]
	s.scrambled = s.scramble(s.current.Word)
}

// scramble Fisher-Yates shuffles the letters, retrying while the result
// equals the original. The retry count is bounded to stay safe on
// degenerate inputs like repeated letters.
func (s *Session) scramble(word string) string {
	if len(word) < 2 {
		return word
	}
	letters := []byte(word)
	for attempt := 0; attempt < 10; attempt++ {
		for i := len(letters) - 1; i > 0; i-- {
			j := s.intn(i + 1)
			letters[i], letters[j] = letters[j], letters[i]
		}
		if string(letters) != word {
			break
		}
	}
	return string(letters)
}

// GuessResult reports the outcome of one submitted guess.
type GuessResult struct {
	Correct bool
	Points  int
	Word    string
}

// Guess checks a submission against the current word. A correct guess
// scores, banks the word for the day, grants the difficulty's time bonus,
// and deals the next word.
func (s *Session) Guess(input string) GuessResult {
	if !s.Active {
		return GuessResult{}
	}
	guess := strings.ToUpper(strings.TrimSpace(input))
	if guess != s.current.Word {
		return GuessResult{Word: s.current.Word}
	}

	points := s.points()
	s.Score += points
	s.WordsCompleted++
	s.store.MarkWordCompleted(s.current.Word)

	params := difficulties[s.difficulty]
	s.TimeLeft += params.TimeBonus

	word := s.current.Word
	s.nextWord()
	return GuessResult{Correct: true, Points: points, Word: word}
}

// points scores the current word: length times ten, plus two per second
// of time bank above thirty, scaled by the difficulty multiplier.
func (s *Session) points() int {
	base := len(s.current.Word) * 10
	timeBonus := 0
	if s.TimeLeft > 30 {
		timeBonus = (s.TimeLeft - 30) * 2
	}
	return int(math.Round(float64(base+timeBonus) * difficulties[s.difficulty].Multiplier))
}

// Skip discards the current word for a five second penalty and deals the
// next one.
func (s *Session) Skip() {
	if !s.Active {
		return
	}
	s.TimeLeft -= constants.SkipPenaltySec
	if s.TimeLeft < 0 {
		s.TimeLeft = 0
	}
	s.nextWord()
}

// LetterHint reveals a third of the current word's letters, rounded up,
// at a three second penalty. Hidden positions render as underscores.
func (s *Session) LetterHint() string {
	if !s.Active || s.current.Word == "" {
		return ""
	}
	word := s.current.Word
	reveal := (len(word) + 2) / 3
	revealed := make(map[int]bool, reveal)
	for len(revealed) < reveal {
		revealed[s.intn(len(word))] = true
	}

	out := make([]byte, len(word))
	for i := range out {
		if revealed[i] {
			out[i] = word[i]
		} else {
			out[i] = '_'
		}
	}

	s.TimeLeft -= constants.HintPenaltySec
	if s.TimeLeft < 0 {
		s.TimeLeft = 0
	}
	return string(out)
}

// Tick advances the round clock one second; at zero the round ends and
// results persist. Returns false once the round is over.
func (s *Session) Tick() bool {
	if !s.Active || s.Paused {
		return s.Active
	}
	s.TimeLeft--
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		s.End()
		return false
	}
	return true
}

// End stops the round and persists results: today's best score, the play
// count, and a high score entry for any positive score.
func (s *Session) End() {
	if !s.Active {
		return
	}
	s.Active = false
	s.store.UpdateTodayScore(s.Score)
	s.store.RecordGamePlayed()
	if s.Score > 0 {
		s.store.AddHighScore(s.Score, s.WordsCompleted)
	}
}

// Summary is the end-of-round report.
type Summary struct {
	Score          int
	WordsCompleted int
	Difficulty     Difficulty
	HighScores     []models.HighScore
}

func (s *Session) Summary() Summary {
	return Summary{
		Score:          s.Score,
		WordsCompleted: s.WordsCompleted,
		Difficulty:     s.difficulty,
		HighScores:     s.store.GetGameData().HighScores,
	}
}
