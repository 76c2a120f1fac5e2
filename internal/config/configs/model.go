package configs

// Model selects the predictor used for predicted click rates. When Path is
// empty a constant predictor returning Baseline is used.
type Model struct {
	Path     string  `env:"PATH"`
	Baseline float64 `env:"BASELINE" envDefault:"0"`
}
