package util

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

func MakeMatrix2D[T any](a int, b int) [][]T {
	matrix := make([][]T, a)
	for i, _ := range matrix {
		matrix[i] = make([]T, b)
	}
	return matrix
}

func MatrixIdentity[T constraints.Float](n int) [][]T {
	matrix := MakeMatrix2D[T](n, n)
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
	}
	return matrix
}

func MatrixMatrixMultiply[T constraints.Float](a [][]T, b [][]T) ([][]T, error) {
	if len(a) == 0 || len(b) == 0 || len(a[0]) != len(b) {
		return nil, errors.New("matrix dimensions do not match")
	}
	result := MakeMatrix2D[T](len(a), len(b[0]))
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b[0]); j++ {
			var sum T
			for k := 0; k < len(b); k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}
	return result, nil
}

// InvertMatrix3x3 inverts a 3x3 matrix via cofactor expansion.
// Returns nil if the matrix is singular or degenerate.
func InvertMatrix3x3[T constraints.Float](matrix [][]T) [][]T {
	if len(matrix) != 3 || len(matrix[0]) != 3 || len(matrix[1]) != 3 || len(matrix[2]) != 3 {
		return nil
	}
	det := matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
	if det == 0 || math.IsNaN(float64(det)) || math.IsInf(float64(det), 0) {
		return nil
	}
	invDet := 1 / det
	result := MakeMatrix2D[T](3, 3)
	result[0][0] = (matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]) * invDet
	result[0][1] = (matrix[0][2]*matrix[2][1] - matrix[0][1]*matrix[2][2]) * invDet
	result[0][2] = (matrix[0][1]*matrix[1][2] - matrix[0][2]*matrix[1][1]) * invDet
	result[1][0] = (matrix[1][2]*matrix[2][0] - matrix[1][0]*matrix[2][2]) * invDet
	result[1][1] = (matrix[0][0]*matrix[2][2] - matrix[0][2]*matrix[2][0]) * invDet
	result[1][2] = (matrix[0][2]*matrix[1][0] - matrix[0][0]*matrix[1][2]) * invDet
	result[2][0] = (matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]) * invDet
	result[2][1] = (matrix[0][1]*matrix[2][0] - matrix[0][0]*matrix[2][1]) * invDet
	result[2][2] = (matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0]) * invDet
	return result
}

func CompareMatrix2D[T any](a [][]T, b [][]T, compare func(a T, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := 0; j < len(a[i]); j++ {
			if !compare(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}
