package config

// Defaults of the reference scenario: 10 kernel terms, 1000 optimizer
// iterations, 11 training months, 3 unreliable trailing months
// dropped, volume in millions of bytes.
func Default() *Config {
	return &Config{
		Input: Input{
			TimeColumn:      "date",
			SenderColumn:    "user",
			RecipientColumn: "to",
			SizeColumn:      "size",
			Scale:           1e6,
		},
		Model: Model{
			Q:                  10,
			MaxIterations:      1000,
			InitialFrequency:   1,
			InitialLengthscale: 1,
			InitialNoise:       1,
		},
		Split: Split{
			TrainSize: 11,
			DropTail:  3,
		},
	}
}
