package bench

// Generator names one producer of generated text and its output file.
type Generator struct {
	Name string
	Path string
}

// Domain is one reference corpus with the outputs of competing generators.
type Domain struct {
	Name       string
	Reference  string
	Generators []Generator
}

// SweepConfig describes a temperature sweep for a single generator.
type SweepConfig struct {
	Generator string
	Reference string
	// Template is the generated output path with SettingPlaceholder.
	Template  string
	Settings  []float64
	OutputDir string
}

// Config holds evaluation inputs.
type Config struct {
	Sweep   SweepConfig
	Domains []Domain
}

// DefaultTemperatures are the sampling temperatures the recurrent model was run at.
var DefaultTemperatures = []float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.2}

// DefaultConfig returns the default data layout, relative to the evaluation
// directory.
func DefaultConfig() Config {
	return Config{
		Sweep: SweepConfig{
			Generator: "LSTM",
			Reference: "../data/preprocessed_trump_test_data_filtered_for_LSTM",
			Template:  "../LSTM/test-outputs/trump-for-different-temperatures/output-{setting}.txt",
			Settings:  append([]float64(nil), DefaultTemperatures...),
			OutputDir: ".",
		},
		Domains: []Domain{
			{
				Name:      "Trump",
				Reference: "../data/preprocessed_trump_test_data_filtered_for_LSTM",
				Generators: []Generator{
					{Name: "GPT-2", Path: "../GPT-2/trump_output"},
					{Name: "LSTM", Path: "../LSTM/test-outputs/LSTM_trump_test_output"},
				},
			},
			{
				Name:      "News",
				Reference: "../data/test_news_data_filtered_for_LSTM",
				Generators: []Generator{
					{Name: "GPT-2", Path: "../GPT-2/news_output"},
					{Name: "LSTM", Path: "../LSTM/test-outputs/LSTM_news_test_output"},
				},
			},
		},
	}
}
