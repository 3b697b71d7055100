package main

// dataset_gen.go generates deterministic word corpora for standalone
// interning benchmarks (outside `go test`). Each line is one token drawn
// from a fixed vocabulary with either a uniform or Zipf-skewed frequency
// distribution — Zipf skew matters here because it is the realistic case
// for an interner: a small number of very common identifiers dominate
// the stream, which is exactly the workload a local front cache is meant
// to absorb.
//
// Usage:
//
//	go run ./tools/dataset_gen -n 1000000 -vocab 5000 -dist=zipf -seed=42 -out words.txt
//
// Flags:
//
//	-n       number of tokens to generate (default 1e6)
//	-vocab   size of the underlying vocabulary (default 5000)
//	-dist    distribution: "uniform" or "zipf" (default uniform)
//	-zipfs   Zipf s parameter (>1)  (default 1.2)
//	-zipfv   Zipf v parameter (>=1) (default 1.0)
//	-seed    RNG seed (default current time)
//	-out     output file (default stdout)
//
// © 2025 arena-cache authors. MIT License.

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func vocabulary(n int, rnd *rand.Rand) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	words := make([]string, n)
	for i := range words {
		length := 3 + rnd.Intn(10)
		buf := make([]byte, length)
		for j := range buf {
			buf[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		words[i] = string(buf)
	}
	return words
}

func main() {
	var (
		n       = flag.Int("n", 1_000_000, "number of tokens to generate")
		vocab   = flag.Int("vocab", 5000, "size of the underlying vocabulary")
		dist    = flag.String("dist", "uniform", "distribution: uniform or zipf")
		zipfS   = flag.Float64("zipfs", 1.2, "zipf s parameter (>1)")
		zipfV   = flag.Float64("zipfv", 1.0, "zipf v parameter (>=1)")
		seedVal = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
		outPath = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seedVal))
	words := vocabulary(*vocab, rnd)

	var pick func() string
	switch *dist {
	case "uniform":
		pick = func() string { return words[rnd.Intn(len(words))] }
	case "zipf":
		if *zipfS <= 1.0 || *zipfV < 1.0 {
			fmt.Fprintln(os.Stderr, "zipfs must be >1 and zipfv >=1")
			os.Exit(1)
		}
		z := rand.NewZipf(rnd, *zipfS, *zipfV, uint64(len(words)-1))
		pick = func() string { return words[z.Uint64()] }
	default:
		fmt.Fprintln(os.Stderr, "unknown dist:", *dist)
		os.Exit(1)
	}

	var out *os.File
	var err error
	if *outPath == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot create file:", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	w := bufio.NewWriterSize(out, 1<<20)
	defer w.Flush()

	for i := 0; i < *n; i++ {
		fmt.Fprintln(w, pick())
	}
}
