// SPDX-License-Identifier: MIT

// Package regression fits ordinary least-squares linear models through the
// normal equations XᵀX·c = Xᵀy, solved with package linsys.
//
// The pipeline run by Run is:
//
//  1. LoadCSV: read numeric feature and target columns (Schema).
//  2. Split: seeded, deterministic train/test partition of the rows.
//  3. FitScaler / Scaler.Apply: z-score features with training statistics only.
//  4. WithIntercept: append a column of ones.
//  5. Fit: build the normal equations and solve them (CG or direct elimination).
//  6. RMSE on both partitions, collected into a Report.
//
// XᵀX is symmetric positive semi-definite, and positive-definite whenever X
// has full column rank, which is why Conjugate Gradient is the default method.
package regression
