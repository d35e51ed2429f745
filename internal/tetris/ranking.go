package tetris

// Ranking holds the best scores, highest first
type Ranking struct {
	scores []int
}

// NewRanking creates an empty ranking of size slots
func NewRanking(size int) *Ranking {
	if size < 1 {
		size = rankingSize
	}
	return &Ranking{
		scores: make([]int, size),
	}
}

// Load fills the ranking from scores sorted highest first
func (ranking *Ranking) Load(scores []int) {
	for i := range ranking.scores {
		ranking.scores[i] = 0
	}
	for _, score := range scores {
		ranking.InsertScore(score)
	}
}

// InsertScore inserts a score into the rankings and returns its 1-based place,
// or 0 if it did not make the ranking
func (ranking *Ranking) InsertScore(newScore int) int {
	if newScore <= 0 {
		return 0
	}
	for index, score := range ranking.scores {
		if newScore > score {
			ranking.slideScores(index)
			ranking.scores[index] = newScore
			return index + 1
		}
	}
	return 0
}

// Scores returns a copy of the ranking
func (ranking *Ranking) Scores() []int {
	scores := make([]int, len(ranking.scores))
	copy(scores, ranking.scores)
	return scores
}

// slideScores slides the scores down to make room for a new score
func (ranking *Ranking) slideScores(index int) {
	for i := len(ranking.scores) - 1; i > index; i-- {
		ranking.scores[i] = ranking.scores[i-1]
	}
}
