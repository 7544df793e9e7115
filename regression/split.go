// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/linsys/matrix"
)

// splitStream is the second PCG word; fixing it makes the permutation a
// function of the seed alone.
const splitStream = 0x9e3779b97f4a7c15

// Split partitions row indices 0..n-1 into train and test sets.
//
// Implementation:
//   - Stage 1: nTrain = round(trainFrac·n); both sides must be non-empty.
//   - Stage 2: Fisher–Yates shuffle driven by PCG(seed).
//   - Stage 3: the first nTrain shuffled indices are training rows; each side
//     is returned sorted.
//
// The same (n, trainFrac, seed) always yields the same partition.
// Errors: ErrInvalidSplit.
func Split(n int, trainFrac float64, seed uint64) (train, test []int, err error) {
	if math.IsNaN(trainFrac) || trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, fmt.Errorf("train fraction %v not in (0,1): %w", trainFrac, ErrInvalidSplit)
	}
	nTrain := int(math.Round(trainFrac * float64(n)))
	if nTrain < 1 || nTrain >= n {
		return nil, nil, fmt.Errorf("%d rows at fraction %v leave an empty side: %w", n, trainFrac, ErrInvalidSplit)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewPCG(seed, splitStream))
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	train = slices.Clone(idx[:nTrain])
	test = slices.Clone(idx[nTrain:])
	slices.Sort(train)
	slices.Sort(test)

	return train, test, nil
}

// Subset returns the rows of d listed in idx (zero-based), in that order.
// Errors: ErrEmpty for an empty idx, matrix.ErrOutOfRange for a bad index.
func (d *Dataset) Subset(idx []int) (*Dataset, error) {
	if len(idx) == 0 {
		return nil, ErrEmpty
	}
	c := d.X.Cols()
	xs := make([]float64, 0, len(idx)*c)
	ys := make([]float64, 0, len(idx))
	for _, i := range idx {
		row, err := d.X.Row(i + 1)
		if err != nil {
			return nil, err
		}
		xs = append(xs, row.Data()...)
		y, err := d.Y.At(i)
		if err != nil {
			return nil, err
		}
		ys = append(ys, y)
	}

	x, err := matrix.NewDenseFrom(len(idx), c, xs)
	if err != nil {
		return nil, err
	}
	y, err := matrix.NewVectorFrom(ys...)
	if err != nil {
		return nil, err
	}

	return &Dataset{X: x, Y: y, Features: slices.Clone(d.Features)}, nil
}
