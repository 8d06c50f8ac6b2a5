/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package circuit

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/wireforge/r1cs/field"
)

// Config holds the external configuration surface (spec §6 "CLI surface").
type Config struct {
	// FieldPrime is p. Defaults to the BN254 scalar field modulus.
	FieldPrime *big.Int

	// RunningMultiGenerators selects the ambient-generator lookup strategy
	// (spec §4.3 "getActiveGenerator"): false keeps a single global slot,
	// true keys the ambient registry by goroutine id.
	RunningMultiGenerators bool

	// ProverPath is the absolute path of the external prover binary. The
	// core never invokes it (spec §1 Non-goals); it is only recorded in the
	// Generator's Config, which the Generator does not expose.
	ProverPath string

	// Logger receives construction/evaluation milestones. The zero value is
	// zerolog's disabled logger.
	Logger zerolog.Logger
}

// Option configures a Generator at construction time, mirroring gnark's
// frontend.CompileConfig functional-option pattern
// (cuishuang-gnark/frontend/cs/r1cs/compiler.go: NewCompiler(curveID, config)).
type Option func(*Config)

// WithFieldPrime overrides the default field prime.
func WithFieldPrime(p *big.Int) Option {
	return func(c *Config) { c.FieldPrime = p }
}

// WithMultiGenerators enables the goroutine-keyed ambient registry.
func WithMultiGenerators(enabled bool) Option {
	return func(c *Config) { c.RunningMultiGenerators = enabled }
}

// WithProverPath records the external prover binary's path.
func WithProverPath(path string) Option {
	return func(c *Config) { c.ProverPath = path }
}

// WithLogger overrides the default (disabled) logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		FieldPrime: field.Modulus(),
		Logger:     zerolog.Nop(),
	}
}
