// Package pctx defines Context, the passive configuration record the
// recursive-bipartitioning driver and the multilevel bisector collaborator
// read from: target block count, balance tolerance, objective, driver mode,
// scheduler sizing, and per-block weight targets.
//
// Context is built with functional options, generalized from
// core.GraphOption / builder.BuilderOption, and can optionally be loaded
// from a config file via viper (LoadViper), mirroring perf-analysis's
// mapstructure-based config loader. The demonstration CLI's --config flag
// calls LoadViper.
package pctx
