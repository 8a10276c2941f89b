// Package normalizer rewrites raw speech-to-text transcripts into canonical
// English before intent detection. STT output for this audience is a mix of
// Hindi, Hinglish and mishearings of event names; both substitution tables
// are applied longest-key-first with word-boundary matching so specific
// phrases always win over their substrings.
package normalizer

import (
	"regexp"
	"sort"
	"strings"
)

// speechCorrections rewrites common STT mis-transcriptions of event names
// into their canonical spellings.
var speechCorrections = map[string]string{
	"cardiology":     "codeology",
	"codology":       "codeology",
	"code ology":     "codeology",
	"codeolgy":       "codeology",
	"bugs mash":      "bug smash",
	"bug mash":       "bug smash",
	"hack arisen":    "hack horizon",
	"hacker izen":    "hack horizon",
	"hackorizon":     "hack horizon",
	"robot rumble":   "robo rumble",
	"robo rumbel":    "robo rumble",
	"rover rumble":   "robo rumble",
	"drown derby":    "drone derby",
	"throne derby":   "drone derby",
	"circus craze":   "circuit craze",
	"circuit crays":  "circuit craze",
	"lion follower":  "line follower",
	"lane follower":  "line follower",
	"what wars":      "watt wars",
	"watt walls":     "watt wars",
	"whatwars":       "watt wars",
	"bridge bliss":   "bridge blitz",
	"fridge blitz":   "bridge blitz",
	"chem pricks":    "chem prix",
	"chem prick":     "chem prix",
	"camp rix":       "chem prix",
	"masterchef":     "master chef",
	"master chief":   "master chef",
	"master shef":    "master chef",
	"treasure trial": "treasure trail",
	"pleasure trail": "treasure trail",
	"quick quest":    "quiz quest",
	"quiz crest":     "quiz quest",
	"quizquest":      "quiz quest",
	"peach arena":    "pitch arena",
	"pitch arina":    "pitch arena",
	"sergeant":       "srijan",
	"sri jaan":       "srijan",
	"shree jan":      "srijan",
}

// hinglish maps Hindi/Hinglish tokens to English. Values never contain table
// keys, which keeps Normalize idempotent.
var hinglish = map[string]string{
	// verbs
	"dikhao":  "show",
	"dikha":   "show",
	"batao":   "tell",
	"bata":    "tell",
	"karo":    "do",
	"chalo":   "go",
	"jao":     "go",
	"kholo":   "open",
	"daal do": "add",
	"daalo":   "add",
	"jodo":    "add",
	"hatao":   "remove",
	"nikalo":  "remove",
	"kharido": "buy",
	"le lo":   "buy",
	// question words
	"kya":    "what",
	"kab":    "when",
	"kahan":  "where",
	"kaha":   "where",
	"kaise":  "how",
	"kitna":  "how much",
	"kitne":  "how many",
	"kaun":   "which",
	"kaunse": "which",
	// nouns
	"ghar":     "home",
	"suchi":    "list",
	"keemat":   "price",
	"daam":     "price",
	"inaam":    "prize",
	"puraskar": "prize",
	"jagah":    "venue",
	"samay":    "time",
	"din":      "day",
	"vibhag":   "department",
	"madad":    "help",
	"sahayata": "help",
	// connectors
	"ke liye": "for",
	"ke":      "of",
	"ka":      "of",
	"ki":      "of",
	"mein":    "in",
	"se":      "from",
	"aur":     "and",
	"ko":      "to",
	"hai":     "is",
	"hain":    "are",
	"wapas":   "back",
	"ab":      "now",
	"sab":     "all",
	"sabhi":   "all",
	"mera":    "my",
	"meri":    "my",
	"mere":    "my",
	"mujhe":   "me",
	// greetings and courtesies
	"namaste":   "hello",
	"namaskar":  "hello",
	"shukriya":  "thank you",
	"dhanyavad": "thank you",
	"alvida":    "bye",
	"haan":      "yes",
	"nahi":      "no",
}

// fillers are dropped by ForIntent. Greeting words stay so greeting intents
// can still match.
var fillers = []string{
	"um", "uh", "umm", "hmm", "ah", "er",
	"please", "citro", "kindly", "just",
	"a", "an", "the",
	"yaar", "bhai", "na", "toh", "acha", "accha",
}

var (
	correctionRe = buildTableRegexp(speechCorrections)
	hinglishRe   = buildTableRegexp(hinglish)
	fillerRe     = regexp.MustCompile(`\b(?:` + strings.Join(fillers, "|") + `)\b`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// buildTableRegexp compiles one word-boundary alternation per table, keys
// sorted by length descending so longer phrases match first.
func buildTableRegexp(table map[string]string) *regexp.Regexp {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(keys, "|") + `)\b`)
}

// Normalize lowercases a transcript, repairs misheard event names, rewrites
// Hinglish tokens to English and collapses whitespace. Pure and idempotent.
func Normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return ""
	}
	text = correctionRe.ReplaceAllStringFunc(text, func(m string) string {
		return speechCorrections[m]
	})
	text = hinglishRe.ReplaceAllStringFunc(text, func(m string) string {
		return hinglish[m]
	})
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// ForIntent normalizes and additionally strips filler words so pattern
// scoring sees only content tokens.
func ForIntent(raw string) string {
	text := Normalize(raw)
	if text == "" {
		return ""
	}
	text = fillerRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
