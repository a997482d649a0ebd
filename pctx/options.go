package pctx

// Option configures a Context before it is handed to the driver, in the
// same functional-options shape as core.GraphOption / builder.BuilderOption.
type Option func(*Context)

// WithK sets the target block count.
func WithK(k int) Option {
	return func(c *Context) { c.K = k }
}

// WithEpsilon sets the balance tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Context) { c.Eps = eps }
}

// WithObjective sets the partition-quality objective.
func WithObjective(o Objective) Option {
	return func(c *Context) { c.Objective = o }
}

// WithMode sets the driver mode.
func WithMode(m Mode) Option {
	return func(c *Context) { c.Mode = m }
}

// WithType sets whether this Context describes the main call or an
// internal initial-partitioning sub-problem.
func WithType(t Type) Option {
	return func(c *Context) { c.Type = t }
}

// WithThreads sets the scheduler's thread count.
func WithThreads(n int) Option {
	return func(c *Context) { c.Threads = n }
}

// WithDegreeOfParallelism sets the scheduler's parallelism fraction.
func WithDegreeOfParallelism(d float64) Option {
	return func(c *Context) { c.DegreeOfParallelism = d }
}

// WithIndividualPartWeights switches the driver from the adaptive-ε
// formula to explicit per-block perfect-balance and max weights.
func WithIndividualPartWeights(perfect, max []int64) Option {
	return func(c *Context) {
		c.UseIndividualPartWeights = true
		c.PerfectBalancePartWeights = perfect
		c.MaxPartWeights = max
	}
}

// WithRefinement sets the refinement sub-record. The core never reads
// it; it exists so external refinement collaborators have somewhere to
// read their configuration from.
func WithRefinement(r RefinementParams) Option {
	return func(c *Context) { c.Refinement = r }
}

// New builds a Context with sane defaults (K=2, Eps=0.03, ObjectiveCut,
// ModeRecursiveBipartitioning, TypeMain, Threads=1,
// DegreeOfParallelism=1.0) and applies opts left to right, then
// validates the result.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		K:                   2,
		Eps:                 0.03,
		Objective:           ObjectiveCut,
		Mode:                ModeRecursiveBipartitioning,
		Type:                TypeMain,
		Threads:             1,
		DegreeOfParallelism: 1.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(c *Context) error {
	if c.K < 2 {
		return ErrTooFewBlocks
	}
	if !c.UseIndividualPartWeights && (c.Eps < 0 || c.Eps >= 1) {
		return ErrEpsilonOutOfRange
	}
	if c.UseIndividualPartWeights {
		if len(c.PerfectBalancePartWeights) != c.K || len(c.MaxPartWeights) != c.K {
			return ErrPartWeightsLengthMismatch
		}
	}
	return nil
}
