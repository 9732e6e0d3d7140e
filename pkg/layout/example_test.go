package layout_test

import (
	"fmt"

	"github.com/matzehuels/tablefit/pkg/layout"
)

func ExampleHeight() {
	m := layout.Measurements{
		Header:        40,
		Pagination:    30,
		HasPagination: true,
		SpaceBelow:    600,
	}
	b := layout.Height(m, layout.Config{CanResize: true})
	fmt.Println(b.Mode, b.Height)
	// Output: viewport 511
}

func ExampleScrollWidth() {
	cols := []layout.Column{
		{Key: "name", Width: 100},
		{Key: "email", Width: 200},
		{Key: "notes", Width: 500, DefaultHidden: true},
	}
	x, ok := layout.ScrollWidth(cols, 250)
	fmt.Println(x, ok)
	// Output: 300 true
}
