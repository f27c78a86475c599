package english

import "strings"

// Irregular paradigms. Lemmas listed here skip regular generation for the
// affected word class; forms that happen to be regular (e.g. "going") are
// spelled out so the full paradigm stays complete.
var irregularVerbs = map[string][]string{
	"be":    {"am", "is", "are", "was", "were", "been", "being"},
	"have":  {"has", "had", "having"},
	"do":    {"does", "did", "done", "doing"},
	"go":    {"goes", "went", "gone", "going"},
	"say":   {"says", "said", "saying"},
	"make":  {"makes", "made", "making"},
	"take":  {"takes", "took", "taken", "taking"},
	"come":  {"comes", "came", "coming"},
	"see":   {"sees", "saw", "seen", "seeing"},
	"know":  {"knows", "knew", "known", "knowing"},
	"get":   {"gets", "got", "gotten", "getting"},
	"give":  {"gives", "gave", "given", "giving"},
	"find":  {"finds", "found", "finding"},
	"think": {"thinks", "thought", "thinking"},
	"tell":  {"tells", "told", "telling"},
	"leave": {"leaves", "left", "leaving"},
	"feel":  {"feels", "felt", "feeling"},
	"bring": {"brings", "brought", "bringing"},
	"begin": {"begins", "began", "begun", "beginning"},
	"keep":  {"keeps", "kept", "keeping"},
	"hold":  {"holds", "held", "holding"},
	"write": {"writes", "wrote", "written", "writing"},
	"stand": {"stands", "stood", "standing"},
	"hear":  {"hears", "heard", "hearing"},
	"let":   {"lets", "letting"},
	"mean":  {"means", "meant", "meaning"},
	"set":   {"sets", "setting"},
	"meet":  {"meets", "met", "meeting"},
	"run":   {"runs", "ran", "running"},
	"pay":   {"pays", "paid", "paying"},
	"sit":   {"sits", "sat", "sitting"},
	"speak": {"speaks", "spoke", "spoken", "speaking"},
	"lie":   {"lies", "lay", "lain", "lying"},
	"lead":  {"leads", "led", "leading"},
	"read":  {"reads", "reading"},
	"grow":  {"grows", "grew", "grown", "growing"},
	"lose":  {"loses", "lost", "losing"},
	"fall":  {"falls", "fell", "fallen", "falling"},
	"send":  {"sends", "sent", "sending"},
	"build": {"builds", "built", "building"},
	"buy":   {"buys", "bought", "buying"},
	"draw":  {"draws", "drew", "drawn", "drawing"},
	"eat":   {"eats", "ate", "eaten", "eating"},
	"fly":   {"flies", "flew", "flown", "flying"},
	"teach": {"teaches", "taught", "teaching"},
	"catch": {"catches", "caught", "catching"},
	"fight": {"fights", "fought", "fighting"},
	"sell":  {"sells", "sold", "selling"},
	"seek":  {"seeks", "sought", "seeking"},
	"throw": {"throws", "threw", "thrown", "throwing"},
}

var irregularNounPlurals = map[string]string{
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"person": "people",
	"foot":   "feet",
	"tooth":  "teeth",
	"goose":  "geese",
	"mouse":  "mice",
	"ox":     "oxen",
	"leaf":   "leaves",
	"life":   "lives",
	"knife":  "knives",
	"wife":   "wives",
	"half":   "halves",
	"sheep":  "sheep",
	"fish":   "fish",
	"deer":   "deer",
}

var irregularAdjectives = map[string][]string{
	"good":   {"better", "best"},
	"bad":    {"worse", "worst"},
	"far":    {"farther", "farthest", "further", "furthest"},
	"little": {"less", "least"},
	"much":   {"more", "most"},
	"many":   {"more", "most"},
	"old":    {"older", "oldest", "elder", "eldest"},
}

// nounForms returns the plural of lemma.
func nounForms(lemma string) []string {
	if plural, ok := irregularNounPlurals[lemma]; ok {
		return []string{plural}
	}
	return []string{sibilantS(lemma)}
}

// verbForms returns third-person singular, past and gerund forms of lemma.
func verbForms(lemma string) []string {
	if forms, ok := irregularVerbs[lemma]; ok {
		return forms
	}

	forms := []string{sibilantS(lemma)}

	switch {
	case strings.HasSuffix(lemma, "e"):
		forms = append(forms, lemma+"d")
	case endsConsonantY(lemma):
		forms = append(forms, lemma[:len(lemma)-1]+"ied")
	case doublesFinalConsonant(lemma):
		forms = append(forms, lemma+lemma[len(lemma)-1:]+"ed")
	default:
		forms = append(forms, lemma+"ed")
	}

	switch {
	case strings.HasSuffix(lemma, "ie"):
		forms = append(forms, lemma[:len(lemma)-2]+"ying")
	case strings.HasSuffix(lemma, "e") && !strings.HasSuffix(lemma, "ee") &&
		!strings.HasSuffix(lemma, "oe") && !strings.HasSuffix(lemma, "ye"):
		forms = append(forms, lemma[:len(lemma)-1]+"ing")
	case doublesFinalConsonant(lemma):
		forms = append(forms, lemma+lemma[len(lemma)-1:]+"ing")
	default:
		forms = append(forms, lemma+"ing")
	}

	return forms
}

// adjectiveForms returns comparative and superlative forms of lemma.
func adjectiveForms(lemma string) []string {
	if forms, ok := irregularAdjectives[lemma]; ok {
		return forms
	}

	switch {
	case strings.HasSuffix(lemma, "e"):
		return []string{lemma + "r", lemma + "st"}
	case endsConsonantY(lemma):
		stem := lemma[:len(lemma)-1]
		return []string{stem + "ier", stem + "iest"}
	case doublesFinalConsonant(lemma):
		doubled := lemma + lemma[len(lemma)-1:]
		return []string{doubled + "er", doubled + "est"}
	default:
		return []string{lemma + "er", lemma + "est"}
	}
}

// sibilantS appends the -s ending with spelling adjustments: -es after
// sibilants, -ies after consonant+y.
func sibilantS(lemma string) string {
	switch {
	case endsConsonantY(lemma):
		return lemma[:len(lemma)-1] + "ies"
	case strings.HasSuffix(lemma, "s"), strings.HasSuffix(lemma, "x"),
		strings.HasSuffix(lemma, "z"), strings.HasSuffix(lemma, "ch"),
		strings.HasSuffix(lemma, "sh"), strings.HasSuffix(lemma, "o"):
		return lemma + "es"
	default:
		return lemma + "s"
	}
}

func isVowel(b byte) bool {
	return b == 'a' || b == 'e' || b == 'i' || b == 'o' || b == 'u'
}

func endsConsonantY(word string) bool {
	return len(word) >= 2 && strings.HasSuffix(word, "y") && !isVowel(word[len(word)-2])
}

// doublesFinalConsonant reports whether the final consonant doubles before
// a vowel-initial suffix (stop → stopped). The heuristic requires a single
// vowel group (one syllable) ending consonant-vowel-consonant, with a final
// consonant that is not w, x or y.
func doublesFinalConsonant(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	last, mid, before := word[n-1], word[n-2], word[n-3]
	if isVowel(last) || last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	if !isVowel(mid) || isVowel(before) {
		return false
	}

	groups := 0
	inGroup := false
	for i := 0; i < n; i++ {
		if isVowel(word[i]) {
			if !inGroup {
				groups++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}
	return groups == 1
}
