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

// Package field carries the scalar field the circuit builder works over:
// the BN254 pairing curve's prime r, and the handful of numeric helpers the
// wire algebra needs to fold constants and check boolean values.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Modulus returns p, the BN254 scalar field prime:
// 21888242871839275222246405745257275088548364400416034343698204186575808495617.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Reduce returns v mod p, in [0, p).
func Reduce(v *big.Int) *big.Int {
	var e fr.Element
	e.SetBigInt(v)
	return e.BigInt(new(big.Int))
}

// Add returns (a + b) mod p.
func Add(a, b *big.Int) *big.Int {
	var ea, eb, res fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	res.Add(&ea, &eb)
	return res.BigInt(new(big.Int))
}

// Sub returns (a - b) mod p.
func Sub(a, b *big.Int) *big.Int {
	var ea, eb, res fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	res.Sub(&ea, &eb)
	return res.BigInt(new(big.Int))
}

// Mul returns (a * b) mod p.
func Mul(a, b *big.Int) *big.Int {
	var ea, eb, res fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	res.Mul(&ea, &eb)
	return res.BigInt(new(big.Int))
}

// Neg returns (-a) mod p.
func Neg(a *big.Int) *big.Int {
	var ea, res fr.Element
	ea.SetBigInt(a)
	res.Neg(&ea)
	return res.BigInt(new(big.Int))
}

// Inverse returns a^-1 mod p. Callers must not pass a value congruent to 0.
func Inverse(a *big.Int) *big.Int {
	var ea, res fr.Element
	ea.SetBigInt(a)
	res.Inverse(&ea)
	return res.BigInt(new(big.Int))
}

// IsZero reports whether v is congruent to 0 mod p.
func IsZero(v *big.Int) bool {
	var e fr.Element
	e.SetBigInt(v)
	return e.IsZero()
}

// Equal reports whether a and b are congruent mod p.
func Equal(a, b *big.Int) bool {
	var ea, eb fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	return ea.Equal(&eb)
}

// IsBoolean reports whether v (already reduced) is 0 or 1.
func IsBoolean(v *big.Int) bool {
	return v.Sign() == 0 || v.Cmp(big.NewInt(1)) == 0
}

// Decompose writes the little-endian bits of v (v must be < 2^nbBits) into a
// freshly-allocated []*big.Int of length nbBits, each element 0 or 1.
//
// Grounded on gnark's std/math/nonnative composition.Decompose, specialized
// to single-bit limbs.
func Decompose(v *big.Int, nbBits int) ([]*big.Int, error) {
	if v.BitLen() > nbBits {
		return nil, errBitWidth(v, nbBits)
	}
	bits := make([]*big.Int, nbBits)
	tmp := new(big.Int).Set(v)
	one := big.NewInt(1)
	for i := 0; i < nbBits; i++ {
		bit := new(big.Int).And(tmp, one)
		bits[i] = bit
		tmp.Rsh(tmp, 1)
	}
	return bits, nil
}

// Recompose is the inverse of Decompose: it folds little-endian bits into a
// single field element, Σ 2^i * bits[i].
//
// Grounded on gnark's std/math/nonnative composition.Recompose.
func Recompose(bits []*big.Int) *big.Int {
	res := new(big.Int)
	for i := len(bits) - 1; i >= 0; i-- {
		res.Lsh(res, 1)
		res.Add(res, bits[i])
	}
	return Reduce(res)
}
