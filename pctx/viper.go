package pctx

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileContext mirrors the on-disk shape of a Context, the way
// perf-analysis's Config structs mirror their YAML sections one field at
// a time instead of decoding straight into the domain type.
type fileContext struct {
	K                         int     `mapstructure:"k"`
	Epsilon                   float64 `mapstructure:"epsilon"`
	Objective                 string  `mapstructure:"objective"`
	Mode                      string  `mapstructure:"mode"`
	Threads                   int     `mapstructure:"threads"`
	DegreeOfParallelism       float64 `mapstructure:"degree_of_parallelism"`
	UseIndividualPartWeights  bool    `mapstructure:"use_individual_part_weights"`
	PerfectBalancePartWeights []int64 `mapstructure:"perfect_balance_part_weights"`
	MaxPartWeights            []int64 `mapstructure:"max_part_weights"`
}

// LoadViper reads a Context from the config file at path (any format
// viper supports: yaml, json, toml), parsing its mode/objective strings
// through ParseMode/ParseObjective and validating the result exactly as
// New does.
func LoadViper(path string) (*Context, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("epsilon", 0.03)
	v.SetDefault("threads", 1)
	v.SetDefault("degree_of_parallelism", 1.0)
	v.SetDefault("mode", "rb")
	v.SetDefault("objective", "cut")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("pctx: reading config %q: %w", path, err)
	}

	var fc fileContext
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("pctx: unmarshalling config %q: %w", path, err)
	}

	mode, err := ParseMode(fc.Mode)
	if err != nil {
		return nil, err
	}
	objective, err := ParseObjective(fc.Objective)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithK(fc.K),
		WithEpsilon(fc.Epsilon),
		WithObjective(objective),
		WithMode(mode),
		WithThreads(fc.Threads),
		WithDegreeOfParallelism(fc.DegreeOfParallelism),
	}
	if fc.UseIndividualPartWeights {
		opts = append(opts, WithIndividualPartWeights(fc.PerfectBalancePartWeights, fc.MaxPartWeights))
	}

	return New(opts...)
}
