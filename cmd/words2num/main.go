// Command words2num converts spelled-out Luxembourgish numbers and dates
// to digits, one phrase per line.
//
//	words2num "véierafoffzeg"                    # 54
//	words2num -date "éischten Abrëll"            # 1.4.
//	echo "dräi komma véier" | words2num -comma   # 3,4
//
// With no arguments, phrases are read from stdin. Lines that fail to
// parse are reported on stderr and the exit status is 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/PeterGilles/words2num"
	"github.com/PeterGilles/words2num/numwords"
)

func main() {
	locale := flag.String("locale", "lb", "locale tag for number parsing")
	date := flag.Bool("date", false, "parse input as date phrases")
	comma := flag.Bool("comma", false, "format decimals with a comma separator")
	flag.Parse()

	sep := numwords.Point
	if *comma {
		sep = numwords.Comma
	}

	convert := func(line string) (string, error) {
		if *date {
			return words2num.DateToNum(line)
		}
		n, err := words2num.Parse(line, *locale)
		if err != nil {
			return "", err
		}
		return n.Format(sep), nil
	}

	failed := false
	run := func(line string) {
		out, err := convert(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "words2num: %v\n", err)
			failed = true
			return
		}
		fmt.Println(out)
	}

	if args := flag.Args(); len(args) > 0 {
		for _, a := range args {
			run(a)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				run(line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "words2num: read stdin: %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
