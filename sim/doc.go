// Package sim builds the stage timeline consumed by the cruise career simulation.
//
// # Reading Guide
//
//   - state.go: StateConfig, one stage of a simulated career
//   - config.go: SimulationConfig, the flat parameter set, and its validation
//   - presets.go: the Default, Baseline, Optimistic and Pessimistic scenarios
//   - states.go: CreateStateConfigs, the expansion from config to stages
//   - summary.go: deterministic expected-value aggregates over a timeline
//   - load.go: strict YAML overlays on top of a preset
//
// Expansion is pure: the same SimulationConfig always yields an equal
// []StateConfig, and nothing here draws random numbers. Sampling dropouts and
// salary variation is left to the simulation that consumes the stages.
package sim
