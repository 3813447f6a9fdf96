package mat2_test

import (
	"fmt"

	"github.com/nbrody/exactnum/mat2"
	"github.com/nbrody/exactnum/projective"
)

// ExampleMatrix_Apply shows the unipotent shift lowering the height of a
// point left of −1.
func ExampleMatrix_Apply() {
	m := mat2.FromInt64s(1, 1, 0, 1)
	pt := projective.NewPointInt64(-5, 2)
	img := m.Apply(pt)
	fmt.Println(img, img.Height())
	// Output: -3/2 3
}

// ExampleMatrix_Inverse inverts a determinant-one matrix exactly.
func ExampleMatrix_Inverse() {
	m := mat2.FromInt64s(3, 4, 2, 3)
	inv, _ := m.Inverse()
	fmt.Println(inv)
	fmt.Println(m.Mul(inv))
	// Output:
	// [[3, -4], [-2, 3]]
	// [[1, 0], [0, 1]]
}
