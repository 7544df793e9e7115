// SPDX-License-Identifier: MIT

package regression

import "errors"

var (
	// ErrParse marks malformed input: a non-numeric cell or a row with the wrong field count.
	ErrParse = errors.New("regression: parse error")

	// ErrEmpty is returned when a dataset (or a partition of it) has no rows.
	ErrEmpty = errors.New("regression: empty dataset")

	// ErrInvalidSplit is returned when the train fraction is outside (0, 1) or
	// leaves one side of the split empty.
	ErrInvalidSplit = errors.New("regression: invalid train/test split")

	// ErrInvalidSchema is returned for a Schema that cannot select any columns.
	ErrInvalidSchema = errors.New("regression: invalid schema")
)
