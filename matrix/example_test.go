package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// ExampleMatMul multiplies two 2×2 matrices and prints the product.
func ExampleMatMul() {
	a, _ := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float32{{5, 6}, {7, 8}})

	c, err := a.MatMul(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// Matrix size: (2, 2)
	// [  19.0000  22.0000 ]
	// [  43.0000  50.0000 ]
}

// ExampleBroadcast shows how a shape mismatch is reported.
func ExampleBroadcast() {
	a, _ := matrix.New(2, 3)
	b, _ := matrix.New(3, 2)

	_, err := matrix.Broadcast(a, b, matrix.OpAdd)
	var se *matrix.ShapeError
	if errors.As(err, &se) {
		fmt.Println(se.Expected, se.Actual, errors.Is(err, matrix.ErrShapeMismatch))
	}

	// Output:
	// (2, 3) (3, 2) true
}

// ExampleMatrix_Apply squares every element.
func ExampleMatrix_Apply() {
	m, _ := matrix.FromRows([][]float32{{-1, 2, -3}})
	sq, _ := m.Apply(func(x float32) float32 { return x * x })
	fmt.Println(sq.Data())

	// Output:
	// [1 4 9]
}
