package rb

import "math"

// rootInfo snapshots the top-level problem's total weight, block count,
// and balance tolerance; every adaptive-ε computation along the
// recursion measures the current sub-problem against this fixed root.
type rootInfo struct {
	originalWeight int64
	originalK      int
	originalEps    float64
}

func ceilDivInt64(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// adaptiveEpsilon computes ε' for a sub-problem of total weight w and
// target block count k, relative to the fixed root (W0, k0, ε0):
//
//	base := ceil(W0/k0) / ceil(w/k) * (1 + ε0)
//	ε'   := clamp( base^(1/ceil(log2 k)) - 1, 0, 0.99 )
//
// Returns 0 when w is 0.
func adaptiveEpsilon(info rootInfo, w int64, k int) float64 {
	if w == 0 {
		return 0
	}
	rootPerfect := float64(ceilDivInt64(info.originalWeight, int64(info.originalK)))
	subPerfect := float64(ceilDivInt64(w, int64(k)))
	base := rootPerfect / subPerfect * (1 + info.originalEps)
	exponent := 1 / math.Ceil(math.Log2(float64(k)))
	return clamp(math.Pow(base, exponent)-1, 0, 0.99)
}

// bisectionWeights computes the two-sided (perfect, max) target weights
// for splitting a sub-problem of total weight w and target block count
// k into kSide0 ∪ kSide1 = k blocks, via the adaptive-ε formula.
func bisectionWeights(info rootInfo, w int64, k, kSide0, kSide1 int) (perfect0, perfect1, max0, max1 int64) {
	epsPrime := adaptiveEpsilon(info, w, k)
	perfect0 = ceilDivInt64(int64(kSide0)*w, int64(k))
	perfect1 = ceilDivInt64(int64(kSide1)*w, int64(k))
	max0 = int64(math.Ceil((1 + epsPrime) * float64(perfect0)))
	max1 = int64(math.Ceil((1 + epsPrime) * float64(perfect1)))
	return
}

// individualBisectionWeights computes the two-sided (perfect, max)
// target weights when the Context requests explicit per-block targets:
//
//	f    := w / ΣM[i]
//	s0   := Σ_{i<kSide0} ceil(f·M[i]),  s1 := Σ_{i>=kSide0} ceil(f·M[i])
//	base := ΣM[i] / (s0+s1)
//	ε'   := clamp( base^(1/ceil(log2 k)) - 1, 0, 0.99 )
//
// and max_i = round((1+ε')·s_i).
func individualBisectionWeights(M []int64, w int64, k, kSide0 int) (perfect0, perfect1, max0, max1 int64) {
	var sumM int64
	for _, m := range M {
		sumM += m
	}
	if sumM == 0 {
		return 0, 0, 0, 0
	}
	f := float64(w) / float64(sumM)

	var s0, s1 int64
	for i, m := range M {
		v := int64(math.Ceil(f * float64(m)))
		if i < kSide0 {
			s0 += v
		} else {
			s1 += v
		}
	}

	base := float64(sumM) / float64(s0+s1)
	exponent := 1 / math.Ceil(math.Log2(float64(k)))
	epsPrime := clamp(math.Pow(base, exponent)-1, 0, 0.99)

	perfect0, perfect1 = s0, s1
	max0 = int64(math.Round((1 + epsPrime) * float64(s0)))
	max1 = int64(math.Round((1 + epsPrime) * float64(s1)))
	return
}
