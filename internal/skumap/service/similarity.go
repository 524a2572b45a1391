package service

import "strings"

// similarity — нормализованная схожесть в [0..1]: (maxLen - dist) / maxLen.
// Делим целые, чтобы 8/10 давало ровно 0.8 (граница порога).
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	m := max(len(ra), len(rb))
	if m == 0 {
		return 1
	}
	d := damerauLevenshtein(ra, rb)
	return float64(m-d) / float64(m)
}

// Similarity — то же для вызывающих снаружи; регистр не учитывается.
func Similarity(a, b string) float64 {
	return similarity(strings.ToLower(a), strings.ToLower(b))
}

// tokenSet: слова по пробелам, дубли схлопываются.
func tokenSet(s string) map[string]struct{} {
	f := strings.Fields(s)
	set := make(map[string]struct{}, len(f))
	for _, w := range f {
		set[w] = struct{}{}
	}
	return set
}

// jaccard = |A∩B| / |A∪B|; для двух пустых множеств 0.
func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
