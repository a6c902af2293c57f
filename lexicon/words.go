// Word tables for the Luxembourgish number grammar.
package lexicon

// Named scale values used across the parser packages.
const (
	Hundred  int64 = 100
	Thousand int64 = 1_000
	Million  int64 = 1_000_000
	Milliard int64 = 1_000_000_000
	Billioun int64 = 1_000_000_000_000
)

// words maps each number word, connector particle, and decimal mark to its
// entry. Spelling variants heard in transcribed speech (foffzeg/fofzeg,
// uechtzéng/achtzéng, honnert/honnrt, ...) are first-class keys.
var words = map[string]Entry{
	// Units 0–9. eent/een/eng are positional and gender variants of 1.
	"null":   {Role: Unit, Value: 0},
	"eent":   {Role: Unit, Value: 1},
	"een":    {Role: Unit, Value: 1},
	"eng":    {Role: Unit, Value: 1},
	"zwee":   {Role: Unit, Value: 2},
	"dräi":   {Role: Unit, Value: 3},
	"véier":  {Role: Unit, Value: 4},
	"fënnef": {Role: Unit, Value: 5},
	"sechs":  {Role: Unit, Value: 6},
	"siwen":  {Role: Unit, Value: 7},
	"aacht":  {Role: Unit, Value: 8},
	"néng":   {Role: Unit, Value: 9},

	// Teens 10–19, irregular stems.
	"zéng":      {Role: Teen, Value: 10},
	"eelef":     {Role: Teen, Value: 11},
	"zwielef":   {Role: Teen, Value: 12},
	"dräizéng":  {Role: Teen, Value: 13},
	"véierzéng": {Role: Teen, Value: 14},
	"foffzéng":  {Role: Teen, Value: 15},
	"fofzéng":   {Role: Teen, Value: 15},
	"siechzéng": {Role: Teen, Value: 16},
	"siwenzéng": {Role: Teen, Value: 17},
	"uechtzéng": {Role: Teen, Value: 18},
	"achtzéng":  {Role: Teen, Value: 18},
	"nonnzéng":  {Role: Teen, Value: 19},
	"nongzéng":  {Role: Teen, Value: 19},
	"nonzéng":   {Role: Teen, Value: 19},

	// Tens 20–90 by decade word.
	"zwanzeg":  {Role: Ten, Value: 20},
	"drësseg":  {Role: Ten, Value: 30},
	"dräisseg": {Role: Ten, Value: 30},
	"véierzeg": {Role: Ten, Value: 40},
	"foffzeg":  {Role: Ten, Value: 50},
	"fofzeg":   {Role: Ten, Value: 50},
	"sechzeg":  {Role: Ten, Value: 60},
	"siechzeg": {Role: Ten, Value: 60},
	"siwenzeg": {Role: Ten, Value: 70},
	"achtzeg":  {Role: Ten, Value: 80},
	"nonnzeg":  {Role: Ten, Value: 90},
	"nonzeg":   {Role: Ten, Value: 90},

	// Scale words. The plural/liaison forms of millioun and milliard
	// appear after a multiplier ("dräi milliounen").
	"honnert":    {Role: Scale, Value: Hundred},
	"honnrt":     {Role: Scale, Value: Hundred},
	"dausend":    {Role: Scale, Value: Thousand},
	"millioun":   {Role: Scale, Value: Million},
	"milliounen": {Role: Scale, Value: Million},
	"millioune":  {Role: Scale, Value: Million},
	"milliard":   {Role: Scale, Value: Milliard},
	"milliarden": {Role: Scale, Value: Milliard},
	"milliarde":  {Role: Scale, Value: Milliard},
	"billioun":   {Role: Scale, Value: Billioun},
	"billiounen": {Role: Scale, Value: Billioun},

	// The connector particle linking a units digit to a tens word in
	// inverted order ("véier-a-foffzeg" = 54).
	"a":  {Role: Connector},
	"an": {Role: Connector},

	// Decimal marks.
	"komma": {Role: DecimalMark},
	"punkt": {Role: DecimalMark},
}

// ordinalStems maps irregular ordinal stems (1st–19th) to their base
// cardinal value. Ordinals from 20 up follow the productive -st pattern
// and are derived by the resolver, not listed here.
var ordinalStems = map[string]int64{
	"éischt":     1,
	"zweet":      2,
	"drëtt":      3,
	"véiert":     4,
	"fënneft":    5,
	"sechst":     6,
	"siwent":     7,
	"aacht":      8,
	"néngt":      9,
	"zéngt":      10,
	"eeleft":     11,
	"zwieleft":   12,
	"dräizéngt":  13,
	"véierzéngt": 14,
	"foffzéngt":  15,
	"fofzéngt":   15,
	"siechzéngt": 16,
	"siwenzéngt": 17,
	"uechtzéngt": 18,
	"achtzéngt":  18,
	"nonnzéngt":  19,
	"nonzéngt":   19,
}

// months maps Luxembourgish month names and standard abbreviations to
// month numbers.
var months = map[string]int{
	"januar":    1,
	"februar":   2,
	"mäerz":     3,
	"abrëll":    4,
	"mee":       5,
	"juni":      6,
	"juli":      7,
	"august":    8,
	"september": 9,
	"oktober":   10,
	"november":  11,
	"dezember":  12,

	"jan": 1,
	"feb": 2,
	"mrz": 3,
	"abr": 4,
	"jun": 6,
	"jul": 7,
	"aug": 8,
	"sep": 9,
	"okt": 10,
	"nov": 11,
	"dez": 12,
}

func init() {
	for w, e := range words {
		e.Surface = w
		words[w] = e
	}
}
