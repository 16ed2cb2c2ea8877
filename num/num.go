// This package contains the 128-bit integer types carried by the protocol.
package num

import (
	"math/big"
)

// U128 is an unsigned 128-bit integer.
type U128 struct {
	Hi uint64
	Lo uint64
}

// I128 is a signed 128-bit integer in two's complement.
type I128 struct {
	Hi int64
	Lo uint64
}

var (
	two64   = new(big.Int).Lsh(big.NewInt(1), 64)
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	maxU128 = new(big.Int).Sub(two128, big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func U128From64(v uint64) U128 {
	return U128{Lo: v}
}

func I128From64(v int64) I128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return I128{Hi: hi, Lo: uint64(v)}
}

// Big returns v as a new big.Int.
func (v U128) Big() *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(v.Lo))
}

func (v U128) String() string {
	return v.Big().String()
}

// Big returns v as a new big.Int.
func (v I128) Big() *big.Int {
	b := new(big.Int).SetUint64(uint64(v.Hi))
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(v.Lo))
	if v.Hi < 0 {
		b.Sub(b, two128)
	}
	return b
}

func (v I128) String() string {
	return v.Big().String()
}

// U128FromBig converts b, reporting false if it doesn't fit.
func U128FromBig(b *big.Int) (U128, bool) {
	if b.Sign() < 0 || b.Cmp(maxU128) > 0 {
		return U128{}, false
	}
	hi, lo := split(b)
	return U128{Hi: hi, Lo: lo}, true
}

// I128FromBig converts b, reporting false if it doesn't fit.
func I128FromBig(b *big.Int) (I128, bool) {
	if b.Cmp(minI128) < 0 || b.Cmp(maxI128) > 0 {
		return I128{}, false
	}
	u := new(big.Int).Set(b)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	hi, lo := split(u)
	return I128{Hi: int64(hi), Lo: lo}, true
}

func split(b *big.Int) (hi, lo uint64) {
	q, r := new(big.Int).QuoRem(b, two64, new(big.Int))
	return q.Uint64(), r.Uint64()
}
