package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/smooth"
)

func ExampleMovingAverage_Update() {
	m, _ := smooth.New(smooth.DefaultWindow)
	for _, x := range []uint16{4095, 4095, 0} {
		fmt.Println(m.Update(x))
	}
	// Output:
	// 4095
	// 4095
	// 2730
}
