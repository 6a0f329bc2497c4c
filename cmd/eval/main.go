package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/mailstat/smgp/metrics"
)

var (
	COMMA = ","
	SKIP  = 0
	NOISE = 0.
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Recompute forecast accuracy from a forecast CSV. Invocation:
	%s [OPTIONS] < FORECAST.csv
Rows without an actual value (future months) are skipped. Reports
RMSE, MAPE and the average negative log predictive density.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&COMMA, "comma", COMMA, "field separator")
	flag.IntVar(&SKIP, "s", SKIP, "initial scored rows to skip (e.g. the training months)")
	flag.Float64Var(&NOISE, "noise", NOISE, "noise variance to add to the predictive variance")
}

func main() {
	flag.Parse()

	rdr := csv.NewReader(os.Stdin)
	rdr.Comma = rune(COMMA[0])

	rdr.Read() // skip the header
	var pred, actual, nlpds []float64
	n := 0
	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		// index,actual,mean,std,lo95,hi95
		if record[1] == "" {
			continue
		}
		if n++; n <= SKIP {
			continue
		}

		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			log.Fatal(err)
		}
		mean, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			log.Fatal(err)
		}
		std, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			log.Fatal(err)
		}
		std = math.Sqrt(std*std + NOISE)

		pred = append(pred, mean)
		actual = append(actual, y)
		nlpds = append(nlpds, metrics.NLPD(y, mean, std))
	}

	rmse, err := metrics.RMSE(pred, actual)
	if err != nil {
		log.Fatal(err)
	}
	mape, err := metrics.MAPE(pred, actual)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("RMSE %f\nMAPE %f\nNLPD %f\n", rmse, mape, stat.Mean(nlpds, nil))
}
