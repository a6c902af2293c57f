//go:build ignore

// e2e_pipeline exercises the number and date parsers end to end and writes
// structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PeterGilles/words2num"
	"github.com/PeterGilles/words2num/datewords"
	"github.com/PeterGilles/words2num/lexicon"
	"github.com/PeterGilles/words2num/numwords"
)

const (
	logPath     = "data/e2e_pipeline.log"
	goldenPath  = "data/golden/numwords.json"
	concWorkers = 8
	concIter    = 100
	separator   = "=========================================================="
)

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: detail}
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// ---------- test suites ----------

func testLexicon() []testResult {
	const mod = "lexicon"
	var results []testResult

	results = append(results, safeRun(mod, "lookup_roles", func() testResult {
		start := time.Now()
		cases := []struct {
			word string
			role lexicon.Role
		}{
			{"véier", lexicon.Unit},
			{"dräizéng", lexicon.Teen},
			{"foffzeg", lexicon.Ten},
			{"dausend", lexicon.Scale},
			{"an", lexicon.Connector},
			{"komma", lexicon.DecimalMark},
		}
		for _, c := range cases {
			e, ok := lexicon.Lookup(c.word)
			if !ok || e.Role != c.role {
				return fail(mod, "lookup_roles",
					fmt.Sprintf("Lookup(%q) = {%v %v}, want role %v", c.word, e.Role, ok, c.role), start)
			}
		}
		return pass(mod, "lookup_roles", start)
	}))

	results = append(results, safeRun(mod, "segment_fused", func() testResult {
		start := time.Now()
		entries, ok := lexicon.Segment("nonnzénghonnertnénganzwanzeg")
		if !ok || len(entries) != 5 {
			return fail(mod, "segment_fused",
				fmt.Sprintf("Segment returned %d entries, ok=%v, want 5", len(entries), ok), start)
		}
		return pass(mod, "segment_fused", start)
	}))

	return results
}

func testNumwords() []testResult {
	const mod = "numwords"
	var results []testResult

	results = append(results, safeRun(mod, "cardinal_inversion", func() testResult {
		start := time.Now()
		for _, in := range []string{"véierafoffzeg", "véier a foffzeg", "véier-a-foffzeg"} {
			n, err := numwords.ParseCardinal(in)
			if err != nil {
				return fail(mod, "cardinal_inversion", fmt.Sprintf("ParseCardinal(%q): %v", in, err), start)
			}
			if n != 54 {
				return fail(mod, "cardinal_inversion", fmt.Sprintf("ParseCardinal(%q) = %d, want 54", in, n), start)
			}
		}
		return pass(mod, "cardinal_inversion", start)
	}))

	results = append(results, safeRun(mod, "decimal", func() testResult {
		start := time.Now()
		n, err := numwords.ParseNumber("dräi komma véier")
		if err != nil {
			return fail(mod, "decimal", fmt.Sprintf("ParseNumber: %v", err), start)
		}
		if got := n.Format(numwords.Comma); got != "3,4" {
			return fail(mod, "decimal", fmt.Sprintf("Format = %q, want \"3,4\"", got), start)
		}
		return pass(mod, "decimal", start)
	}))

	results = append(results, safeRun(mod, "grammar_errors", func() testResult {
		start := time.Now()
		for _, in := range []string{"an", "dausend dausend", "hello world"} {
			if n, err := numwords.ParseCardinal(in); err == nil {
				return fail(mod, "grammar_errors", fmt.Sprintf("ParseCardinal(%q) = %d, want error", in, n), start)
			}
		}
		return pass(mod, "grammar_errors", start)
	}))

	return results
}

func testDatewords() []testResult {
	const mod = "datewords"
	var results []testResult

	results = append(results, safeRun(mod, "date_to_num", func() testResult {
		start := time.Now()
		cases := []struct{ in, want string }{
			{"éischten Abrëll", "1.4."},
			{"drëtte Mäerz nonnzénghonnertnénganzwanzeg", "3.3.1929"},
			{"fënnef Januar", "5.1."},
		}
		for _, c := range cases {
			got, err := datewords.DateToNum(c.in)
			if err != nil {
				return fail(mod, "date_to_num", fmt.Sprintf("DateToNum(%q): %v", c.in, err), start)
			}
			if got != c.want {
				return fail(mod, "date_to_num", fmt.Sprintf("DateToNum(%q) = %q, want %q", c.in, got, c.want), start)
			}
		}
		return pass(mod, "date_to_num", start)
	}))

	results = append(results, safeRun(mod, "suffix_mismatch", func() testResult {
		start := time.Now()
		d, err := datewords.Parse("éischten Februar")
		if err != nil {
			return fail(mod, "suffix_mismatch", fmt.Sprintf("Parse: %v", err), start)
		}
		if !d.SuffixMismatch || d.Day != 1 || d.Month != 2 {
			return fail(mod, "suffix_mismatch", fmt.Sprintf("Parse = %+v", d), start)
		}
		return pass(mod, "suffix_mismatch", start)
	}))

	return results
}

func testFacade() []testResult {
	const mod = "facade"
	var results []testResult

	results = append(results, safeRun(mod, "locale_dispatch", func() testResult {
		start := time.Now()
		for _, loc := range []string{"lb", "lb_LU", "lb-LU"} {
			n, err := words2num.Parse("véierafoffzeg", loc)
			if err != nil || n.Int != 54 {
				return fail(mod, "locale_dispatch",
					fmt.Sprintf("Parse(_, %q) = %v, %v", loc, n, err), start)
			}
		}
		if _, err := words2num.Parse("véierafoffzeg", "xx"); err == nil {
			return fail(mod, "locale_dispatch", "unknown locale accepted", start)
		}
		return pass(mod, "locale_dispatch", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_parsers_8_goroutines_x100", func() testResult {
		start := time.Now()
		var panics atomic.Int64
		var wg sync.WaitGroup

		for range concWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						_, _ = numwords.ParseCardinal("nonnzénghonnertnénganzwanzeg")
						_, _ = numwords.ParseNumber("dräi komma véier")
						_, _ = datewords.DateToNum("éischten Abrëll")
						_, _ = words2num.Parse("véierafoffzeg", "lb_LU")
						lexicon.Segment("véierdausendvéierafoffzeg")
					}()
				}
			}()
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_parsers_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(mod, "all_parsers_8_goroutines_x100", start)
	}))

	return results
}

// goldenCase mirrors one entry of the golden corpus file.
type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Want  int64  `json:"want"`
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	results = append(results, safeRun(mod, "golden_corpus", func() testResult {
		start := time.Now()
		raw, err := os.ReadFile(goldenPath)
		if err != nil {
			return fail(mod, "golden_corpus", fmt.Sprintf("read %s: %v", goldenPath, err), start)
		}
		var cases []goldenCase
		if err := json.Unmarshal(raw, &cases); err != nil {
			return fail(mod, "golden_corpus", fmt.Sprintf("unmarshal: %v", err), start)
		}
		if len(cases) == 0 {
			return fail(mod, "golden_corpus", "no cases in golden file", start)
		}
		for _, c := range cases {
			got, err := numwords.ParseCardinal(c.Input)
			if err != nil {
				return fail(mod, "golden_corpus", fmt.Sprintf("%s: %v", c.Name, err), start)
			}
			if got != c.Want {
				return fail(mod, "golden_corpus", fmt.Sprintf("%s: got %d, want %d", c.Name, got, c.Want), start)
			}
		}
		log.Printf("  corpus: %d golden cases", len(cases))
		return pass(mod, "golden_corpus", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testLexicon,
		testNumwords,
		testDatewords,
		testFacade,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  words2num E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "  Go: %s  OS: %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	totalPassed := 0
	var totalDuration time.Duration
	for _, r := range results {
		status := "PASS"
		if !r.passed {
			status = "FAIL"
		} else {
			totalPassed++
		}
		totalDuration += r.duration
		fmt.Fprintf(bw, "  %-6s [%s] %-40s %s\n", status, r.module, r.name, r.duration.Round(time.Microsecond))
		if !r.passed && r.detail != "" {
			for line := range strings.SplitSeq(r.detail, "\n") {
				fmt.Fprintf(bw, "         %s\n", line)
			}
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		len(results), totalPassed, len(results)-totalPassed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test")
	start := time.Now()

	results := runAllSuites()

	failed := 0
	for _, r := range results {
		if !r.passed {
			failed++
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
	log.Printf("%d tests, %d failed in %s", len(results), failed, time.Since(start).Round(time.Microsecond))

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	if failed > 0 {
		os.Exit(1)
	}
}
