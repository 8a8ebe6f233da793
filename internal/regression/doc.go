// Package regression fits the experimental (height, speed) dataset.
//
// Two independent models are fitted:
//
//   - [Linear]: ordinary least squares v = slope·h + intercept, with R²
//   - [Power]: v = A·h^p by Levenberg–Marquardt nonlinear least squares
//
// [Fit] runs both and returns a [Result].
package regression
