// SPDX-License-Identifier: EPL-2.0

package viseme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Viseme is the index of a mouth shape class in a score vector.
type Viseme int

const (
	Sil Viseme = iota
	PP
	FF
	TH
	DD
	KK
	CH
	SS
	NN
	RR
	AA
	E
	IH
	OH
	OU

	// Count is the length of every score vector.
	Count = int(OU) + 1
)

var names = [Count]string{
	"sil", "PP", "FF", "TH", "DD",
	"kk", "CH", "SS", "nn", "RR",
	"aa", "E", "ih", "oh", "ou",
}

// Names returns the class names in index order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])

	return out
}

func (v Viseme) String() string {
	if v < 0 || int(v) >= Count {
		return "Viseme(" + strconv.Itoa(int(v)) + ")"
	}

	return names[v]
}

// Parse looks a class up by its exact name.
func Parse(name string) (Viseme, error) {
	for i, n := range names {
		if n == name {
			return Viseme(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownViseme, name)
}

// ArgMax returns the index of the highest score. Ties resolve to the lowest
// index. NaN scores never win. An empty slice yields -1.
func ArgMax(scores []float32) int {
	best := -1
	for i, s := range scores {
		if math.IsNaN(float64(s)) {
			continue
		}

		if best < 0 || s > scores[best] {
			best = i
		}
	}

	return best
}

// Best returns the winning class of scores, or ErrNoPrediction when no score
// is a number.
func Best(scores []float32) (Viseme, error) {
	i := ArgMax(scores)
	if i < 0 {
		return Sil, fmt.Errorf("%w: %d scores", ErrNoPrediction, len(scores))
	}

	return Viseme(i), nil
}

// FormatDistribution renders scores with two decimals, separated by "; ".
func FormatDistribution(scores []float32) string {
	var sb strings.Builder
	for i, s := range scores {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(strconv.FormatFloat(float64(s), 'f', 2, 32))
	}

	return sb.String()
}
