package rex2

// DWOP (Delta Width Optimized Predictor) entropy decoder.
//
// Five adaptive linear predictors of orders 0-4 compete by running energy;
// the lowest-energy predictor is selected each sample, its residual is read
// via a mixed unary + adaptive-range code, zig-zag decoded into a signed
// doubled delta, and the five predictor registers are updated through a
// cascade of differences. Ported bit-for-bit from the reverse-engineered
// reference decoder (see original_source/src/dsp/dwop.c in the retrieval
// pack this was built from).

const (
	dwopEnergyInit = 2560
	dwopMaxUnary   = 50000
)

// predictorCase remaps the energy-selection index (0..4, lowest energy
// wins ties toward the lower index) to the predictor order actually
// applied. Not the identity: confusing the two causes exponential
// divergence after the first time a higher-order predictor is picked.
var predictorCase = [5]int32{0, 1, 4, 2, 3}

// dwopState is one channel's persistent decoder state. It must not be
// shared between channels or reset between samples within a stream: rv and
// ba in particular are cross-sample range-coder state.
type dwopState struct {
	s [5]int32 // predictor registers, doubled representation
	e [5]int32 // per-predictor running energy, always >= 0
	rv uint32  // range-coder register, never 0 after init
	ba int     // bits-accumulated, carried across samples
}

func newDWOPState() *dwopState {
	st := &dwopState{rv: 2}
	for i := range st.e {
		st.e[i] = dwopEnergyInit
	}

	return st
}

// decodeSample decodes one 16-bit sample from br, mutating st in place.
// ok is false only when the unary safety cap trips or the range register
// degenerates to zero — both fatal for the enclosing stream decode.
func (st *dwopState) decodeSample(br *bitReader) (sample int16, ok bool) {
	// 1. Predictor selection: lowest index whose energy is strictly below
	// every earlier candidate (ties favor the lower index).
	minE := uint32(st.e[0])
	k := 0

	for i := 1; i < 5; i++ {
		if uint32(st.e[i]) < minE {
			minE = uint32(st.e[i])
			k = i
		}
	}

	// 2. Quantizer step. Unsigned arithmetic; not to be refactored to
	// floating point.
	step := (minE*3 + 0x24) >> 7

	// 3. Unary quotient.
	acc := uint32(0)
	cs := step
	qc := 7
	uc := 0

	for {
		if br.readBit() == 1 {
			break
		}

		acc += cs
		qc--

		if qc == 0 {
			cs <<= 2
			qc = 7
		}

		uc++
		if uc > dwopMaxUnary {
			return 0, false
		}
	}

	// 4. Adaptive range coder: remainder bit count.
	nb := st.ba

	if cs >= st.rv {
		for cs >= st.rv {
			st.rv <<= 1
			if st.rv == 0 {
				return 0, false
			}

			nb++
		}
	} else {
		nb++
		t := st.rv

		for {
			st.rv = t
			t >>= 1
			nb--

			if cs >= t {
				break
			}
		}
	}

	// 5. Remainder.
	var ext uint32
	if nb > 0 {
		ext = br.readBits(nb)
	}

	co := st.rv - cs

	var rem uint32
	if ext < co {
		rem = ext
	} else {
		x := br.readBit()
		rem = co + (ext-co)*2 + x
	}

	st.ba = nb

	// 6. Zig-zag signed delta: maps unsigned magnitudes to
	// 0, -2, 2, -4, 4, ... in the doubled domain.
	val := acc + rem
	d := int32(val ^ uint32(-int32(val&1)))

	// 7. Cascaded predictor state update, dispatched through the
	// case-reorder table.
	o := st.s

	switch predictorCase[k] {
	case 0:
		st.s[0] = d
		st.s[1] = d - o[0]
		st.s[2] = st.s[1] - o[1]
		st.s[3] = st.s[2] - o[2]
		st.s[4] = st.s[3] - o[3]
	case 1:
		st.s[0] = o[0] + d
		st.s[1] = d
		st.s[2] = d - o[1]
		st.s[3] = st.s[2] - o[2]
		st.s[4] = st.s[3] - o[3]
	case 4:
		st.s[1] = o[1] + d
		st.s[0] = o[0] + st.s[1]
		st.s[2] = d
		st.s[3] = d - o[2]
		st.s[4] = st.s[3] - o[3]
	case 2:
		st.s[2] = o[2] + d
		st.s[1] = o[1] + st.s[2]
		st.s[0] = o[0] + st.s[1]
		st.s[3] = d
		st.s[4] = d - o[3]
	case 3:
		st.s[3] = o[3] + d
		st.s[2] = o[2] + st.s[3]
		st.s[1] = o[1] + st.s[2]
		st.s[0] = o[0] + st.s[1]
		st.s[4] = d
	}

	// 8. Energy update. x ^ (x >> 31) is |x| for non-negative x and
	// |x| - 1 for negative x; the bias is intentional, not a bug to fix.
	for i := 0; i < 5; i++ {
		absS := st.s[i] ^ (st.s[i] >> 31)
		st.e[i] = st.e[i] + absS - int32(uint32(st.e[i])>>5)
	}

	// 9. Emit: un-double via arithmetic right shift, truncate to 16-bit.
	return int16(st.s[0] >> 1), true
}
