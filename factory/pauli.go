package factory

import "github.com/codeaudit/mpnum/tensor"

// Pauli matrices and the single-qubit ladder operators.
var (
	SI = mustMatrix([]complex128{1, 0, 0, 1})
	SX = mustMatrix([]complex128{0, 1, 1, 0})
	SY = mustMatrix([]complex128{0, 1i, -1i, 0})
	SZ = mustMatrix([]complex128{1, 0, 0, -1})

	// SP and SM are 0.5*(SX ± i*SY).
	SP = mustMatrix([]complex128{0, 0, 1, 0})
	SM = mustMatrix([]complex128{0, 1, 0, 0})

	// Pauli lists the basis (SI, SX, SY, SZ).
	Pauli = []*tensor.Dense{SI, SX, SY, SZ}
)

func mustMatrix(data []complex128) *tensor.Dense {
	m, err := tensor.FromSlice(data, tensor.Shape{2, 2})
	if err != nil {
		panic(err)
	}
	return m
}
