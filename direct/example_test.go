package direct_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/matrix"
)

func ExampleGaussian() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
	x, err := direct.Gaussian(a, []float64{3, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f\n", x[0], x[1])

	// Output:
	// 0.8000 1.4000
}

func ExampleCramer_singular() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {1, 2}})
	_, err := direct.Cramer(a, []float64{3, 3})
	fmt.Println(err)

	// Output:
	// Cramer: det=0: direct: matrix is singular or nearly singular
}
