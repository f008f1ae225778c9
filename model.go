package workout

// Record is the summary of one finished activity
type Record struct {
	Type     Kind    `json:"type" yaml:"type"`
	Duration float64 `json:"duration" yaml:"duration"`
	Distance float64 `json:"distance" yaml:"distance"`
	Speed    float64 `json:"speed" yaml:"speed"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// Package is one raw sensor reading: a type code and its positional parameters
type Package struct {
	Code   string    `json:"code" yaml:"code"`
	Params []float64 `json:"params" yaml:"params"`
}

type Config struct {
	Packages []Package `json:"packages" yaml:"packages"`
}
