package filter

import "sort"

// defaultWeights are approximate per-letter frequencies of Russian text, in
// percent. Letters missing from the table score 0.
var defaultWeights = map[rune]float64{
	'о': 10.97, 'е': 8.45, 'а': 8.01, 'и': 7.35, 'н': 6.70, 'т': 6.26,
	'с': 5.47, 'р': 4.73, 'в': 4.54, 'л': 4.40, 'к': 3.49, 'м': 3.21,
	'д': 2.98, 'п': 2.81, 'у': 2.62, 'я': 2.01, 'ы': 1.90, 'ь': 1.74,
	'г': 1.70, 'з': 1.65, 'б': 1.59, 'ч': 1.44, 'й': 1.21, 'х': 0.97,
	'ж': 0.94, 'ш': 0.73, 'ю': 0.64, 'ц': 0.48, 'щ': 0.36, 'э': 0.32,
	'ф': 0.26, 'ъ': 0.04, 'ё': 0.04,
}

// Ranker scores words by summing static per-letter frequency weights.
type Ranker struct {
	weights map[rune]float64
}

// NewRanker builds a Ranker over a custom weight table.
func NewRanker(weights map[rune]float64) *Ranker {
	return &Ranker{weights: weights}
}

// DefaultRanker returns a Ranker over the builtin Russian letter weights.
func DefaultRanker() *Ranker {
	return &Ranker{weights: defaultWeights}
}

// Score sums the weight of every letter in word, repeated letters counted
// each time. Unknown letters contribute 0.
func (r *Ranker) Score(word string) float64 {
	var total float64
	for _, letter := range word {
		total += r.weights[letter]
	}
	return total
}

// Sort orders words by descending score in place. The sort is stable, so
// equally scored words keep their relative order.
func (r *Ranker) Sort(words []string) {
	sort.SliceStable(words, func(i, j int) bool {
		return r.Score(words[i]) > r.Score(words[j])
	})
}
