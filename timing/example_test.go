package timing_test

import (
	"fmt"

	"github.com/katalvlaran/timetable/timing"
)

// ExampleSchedule_Traverse shows the three timetable behaviours side by side.
func ExampleSchedule_Traverse() {
	window, _ := timing.Window(10, 3)
	periodic, _ := timing.Periodic(5, 4, 1)

	h, ok := window.Traverse(2)
	fmt.Println("window @2:", h, ok)
	_, ok = window.Traverse(14)
	fmt.Println("window @14:", ok)

	h, _ = periodic.Traverse(7)
	fmt.Println("periodic @7:", h)
	// Output:
	// window @2: 13 true
	// window @14: false
	// periodic @7: 10
}
