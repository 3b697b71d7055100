package main

// istr-bench is a small word-splitting load generator for the interning
// service, adapted from the original istr-test driver: it reads a text
// file, splits it into maximal runs of ASCII-alphabetic characters and
// the non-alphabetic runs between them, and interns every run from
// several goroutines concurrently, reporting how long each pass took.
//
// It runs the same text through InternSkipLocal (every call pays the
// shard lock) and then through Intern (repeat runs hit the local cache),
// which is the comparison the original driver makes to show the local
// cache's effect.
//
// Usage:
//
//	go run ./cmd/istr-bench -threads 8 path/to/text.txt
//
// © 2025 arena-cache authors. MIT License.

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/arcanehash/istr/pkg/istr"
)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// splitRuns calls f once per maximal run of alphabetic bytes and once per
// maximal run of non-alphabetic bytes, covering all of s.
func splitRuns(s []byte, f func([]byte)) {
	for len(s) > 0 {
		i := 0
		for i < len(s) && isAlpha(s[i]) {
			i++
		}
		if i > 0 {
			f(s[:i])
			s = s[i:]
			continue
		}
		j := 0
		for j < len(s) && !isAlpha(s[j]) {
			j++
		}
		f(s[:j])
		s = s[j:]
	}
}

func runPass(text []byte, threads int, intern func([]byte) istr.Handle) time.Duration {
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			splitRuns(text, func(word []byte) {
				intern(word)
			})
		}()
	}
	wg.Wait()
	return time.Since(start)
}

func main() {
	threads := flag.Int("threads", runtime.GOMAXPROCS(0), "number of concurrent goroutines")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: istr-bench [-threads N] <path>")
		os.Exit(2)
	}

	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "istr-bench:", err)
		os.Exit(1)
	}

	fmt.Printf("running on %d goroutines over %d bytes\n", *threads, len(text))

	skipLocal := runPass(text, *threads, istr.InternSkipLocal)
	fmt.Printf("InternSkipLocal pass: %s\n", skipLocal)

	withLocal := runPass(text, *threads, istr.Intern)
	fmt.Printf("Intern pass (local cache warm after first goroutine touches a word): %s\n", withLocal)

	fmt.Printf("total distinct interned strings: %d\n", istr.Size())
}
