// Package postal resolves Portuguese postal codes to locality names for
// city autofill. A miss is a normal outcome, not an error.
package postal

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var codePattern = regexp.MustCompile(`^\d{7}$`)

// localities maps "prefix-extension" keys (4-digit prefix, extension with
// leading zeros stripped) to locality names as they appear in the CTT
// directory.
var localities = map[string]string{
	"1000-1":   "LISBOA",
	"1100-148": "LISBOA",
	"1500-463": "LISBOA",
	"1990-233": "LISBOA",
	"2005-116": "SANTARÉM",
	"2410-127": "LEIRIA",
	"2500-145": "CALDAS DA RAINHA",
	"2560-263": "TORRES VEDRAS",
	"2645-539": "ALCABIDECHE",
	"2700-768": "AMADORA",
	"2770-100": "PAÇO DE ARCOS",
	"2805-118": "ALMADA",
	"2950-201": "PALMELA",
	"3000-104": "COIMBRA",
	"3510-112": "VISEU",
	"3810-193": "AVEIRO",
	"4000-322": "PORTO",
	"4050-297": "PORTO",
	"4400-103": "VILA NOVA DE GAIA",
	"4470-558": "MAIA",
	"4710-229": "BRAGA",
	"4900-347": "VIANA DO CASTELO",
	"5000-508": "VILA REAL",
	"5300-252": "BRAGANÇA",
	"6000-84":  "CASTELO BRANCO",
	"6200-151": "COVILHÃ",
	"7000-508": "ÉVORA",
	"7520-159": "SINES",
	"7800-426": "BEJA",
	"8000-139": "FARO",
	"8500-541": "PORTIMÃO",
	"9000-64":  "FUNCHAL",
	"9500-101": "PONTA DELGADA",
}

// Districts by 4-digit prefix range, used when the exact code has no
// directory entry.
var districts = []struct {
	lo, hi int
	name   string
}{
	{0, 1999, "Lisboa"},
	{2000, 2999, "Santarém"},
	{3000, 3999, "Coimbra"},
	{4000, 4999, "Porto"},
	{5000, 5999, "Vila Real"},
	{6000, 6999, "Castelo Branco"},
	{7000, 7999, "Évora"},
	{8000, 8999, "Faro"},
	{9000, 9999, "Funchal"},
}

// Lookup provides in-memory locality resolution. It is immutable after
// construction and safe for concurrent access.
type Lookup struct {
	byCode map[string]string
}

// NewLookup builds a Lookup over the bundled directory.
func NewLookup() *Lookup {
	return &Lookup{byCode: localities}
}

// Key normalizes a raw 7-digit code into its directory key:
// "1500463" → "1500-463", "1000001" → "1000-1".
func Key(code string) string {
	ext := strings.TrimLeft(code[4:], "0")
	if ext == "" {
		ext = "0"
	}
	return code[:4] + "-" + ext
}

// Locality resolves a raw 7-digit postal code to a display-ready locality
// name. It returns ("", false) when the code is not exactly 7 digits or has
// no entry; exact directory matches win over the district fallback.
func (l *Lookup) Locality(code string) (string, bool) {
	if !codePattern.MatchString(code) {
		return "", false
	}
	if name, ok := l.byCode[Key(code)]; ok {
		return capitalizeFirst(name), true
	}
	prefix, err := strconv.Atoi(code[:4])
	if err != nil {
		return "", false
	}
	for _, d := range districts {
		if prefix >= d.lo && prefix <= d.hi {
			return d.name, true
		}
	}
	return "", false
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}
