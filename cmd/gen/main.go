package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"
)

var (
	MONTHS    = 17
	START     = "2013-08"
	SENDER    = "jsmith"
	RECIPIENT = "partner@external.example"
	SEED      = int64(0)
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Generate a synthetic email event log. Invocation:
	%s [OPTIONS] > LOG.csv
The monthly volume follows a trend plus a seasonal cycle, split into
individual emails; unrelated rows are mixed in so the filtering code
has something to discard.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&MONTHS, "months", MONTHS, "number of months")
	flag.StringVar(&START, "start", START, "first month, YYYY-MM")
	flag.StringVar(&SENDER, "sender", SENDER, "flagged sender identity")
	flag.StringVar(&RECIPIENT, "recipient", RECIPIENT, "external recipient address")
	flag.Int64Var(&SEED, "seed", SEED, "random seed, 0 for time-based")
}

// Monthly volume in bytes: trend plus a six-month seasonal cycle plus
// noise, the shape the spectral-mixture kernel is meant to recover.
func volume(m int, rng *rand.Rand) float64 {
	v := (1.4 + 0.09*float64(m) +
		0.8*math.Cos(2*math.Pi*float64(m)/6) +
		rng.NormFloat64()*0.15) * 1e6
	if v < 2e5 {
		v = 2e5
	}
	return v
}

func emit(t time.Time, sender, recipient string, size int) {
	fmt.Printf("%s,%s,%s,%d\n",
		t.Format("2006-01-02 15:04:05"), sender, recipient, size)
}

func main() {
	flag.Parse()

	seed := SEED
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start, err := time.Parse("2006-01", START)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -start: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("date,user,to,size")
	for m := 0; m != MONTHS; m++ {
		month := start.AddDate(0, m, 0)
		vol := volume(m, rng)

		// Split the month's volume into a few emails.
		k := 2 + rng.Intn(3)
		weights := make([]float64, k)
		total := 0.
		for i := range weights {
			weights[i] = rng.Float64()
			total += weights[i]
		}
		for i := range weights {
			t := month.AddDate(0, 0, 1+rng.Intn(26)).
				Add(time.Duration(8+rng.Intn(10)) * time.Hour).
				Add(time.Duration(rng.Intn(60)) * time.Minute)
			emit(t, SENDER, RECIPIENT, int(vol*weights[i]/total))
		}

		// Decoy traffic the filter must discard.
		if m%2 == 0 {
			t := month.AddDate(0, 0, 1+rng.Intn(26))
			emit(t, SENDER, "colleague@corp.example",
				50000+rng.Intn(350000))
		}
		if m%3 == 0 {
			t := month.AddDate(0, 0, 1+rng.Intn(26))
			emit(t, "other.user", RECIPIENT, 50000+rng.Intn(350000))
		}
	}
}
