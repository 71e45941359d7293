package circular_test

import (
	"fmt"

	"github.com/matzehuels/chordviz/pkg/layout/circular"
)

func ExampleNodePosition() {
	c := circular.Point{X: 160, Y: 160}
	fmt.Println(circular.NodePosition(0, c, 120))
	fmt.Println(circular.NodePosition(90, c, 120))
	fmt.Println(circular.NodePosition(180, c, 120))
	// Output:
	// 160.00,40.00
	// 280.00,160.00
	// 160.00,280.00
}

func ExampleConnectorPath() {
	c := circular.Point{X: 160, Y: 160}
	p := circular.ConnectorPath(
		circular.NodePosition(0, c, 120),
		circular.NodePosition(90, c, 120),
		c,
	)
	fmt.Println(p)
	fmt.Println(p.At(0.5))
	// Output:
	// M160.00,40.00 Q160.00,160.00 280.00,160.00
	// 190.00,130.00
}

func ExampleLabelAnchorChecked() {
	c := circular.Point{X: 160, Y: 160}
	top := circular.NodePosition(0, c, 120)
	bottom := circular.NodePosition(180, c, 120)

	anchor, degenerate := circular.LabelAnchorChecked(top, bottom, c, 25)
	fmt.Println(anchor, degenerate)
	// Output:
	// 160.00,135.00 true
}
