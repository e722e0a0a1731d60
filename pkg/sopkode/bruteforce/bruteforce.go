// Package bruteforce estimates how long an exhaustive key search against a
// given RSA modulus would take. Pure presentation math for demo output;
// nothing cryptographic depends on it.
package bruteforce

import (
	"fmt"
	"math"
	"math/big"
)

// keysPerSecond is the assumed attacker throughput.
const keysPerSecond = 1e6

// Unit is a human time scale for an Estimate.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Years
	Millennia
	Megaannum
	Gigaannum
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Years:
		return "years"
	case Millennia:
		return "millennia"
	case Megaannum:
		return "megaannum"
	case Gigaannum:
		return "gigaannum"
	default:
		return "unknown"
	}
}

// Estimate is a duration scaled to a human unit.
type Estimate struct {
	Value float64
	Unit  Unit
}

// String renders the estimate; the geological units use scientific
// notation because their values are astronomical by construction.
func (e Estimate) String() string {
	switch e.Unit {
	case Millennia, Megaannum, Gigaannum:
		return fmt.Sprintf("%.2e %s", e.Value, e.Unit)
	default:
		return fmt.Sprintf("%.2f %s", e.Value, e.Unit)
	}
}

// EstimateTime estimates a brute-force search over a 2^bits(n) key space
// at one million keys per second, scaled to the largest fitting unit.
// Realistic moduli overflow float64 and report +Inf years, which is the
// honest answer at this throughput.
func EstimateTime(n *big.Int) Estimate {
	seconds := math.Pow(2, float64(n.BitLen())) / keysPerSecond

	switch {
	case seconds < 60:
		return Estimate{Value: seconds, Unit: Seconds}
	case seconds < 60*60:
		return Estimate{Value: seconds / 60, Unit: Minutes}
	case seconds < 60*60*24:
		return Estimate{Value: seconds / (60 * 60), Unit: Hours}
	case seconds < 60*60*24*365.25:
		return Estimate{Value: seconds / (60 * 60 * 24), Unit: Days}
	default:
		return Estimate{Value: seconds / (60 * 60 * 24 * 365.25), Unit: Years}
	}
}
