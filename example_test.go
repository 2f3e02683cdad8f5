package scribe_test

import (
	"fmt"

	"github.com/inkwell-go/scribe"
)

// Example demonstrates a record literal that stays on one line when it
// fits, and breaks one field per line, indented, when it does not.
func Example() {
	record := func(name string, fields []string) scribe.Document[int] {
		items := make([]scribe.Document[int], len(fields))
		for i, f := range fields {
			items[i] = scribe.Text[int](f)
		}
		body := scribe.Nested(2, scribe.LineBreak[int]().
			Append(scribe.Separated(scribe.Text[int](",").Append(scribe.LineBreak[int]()), items)))
		return scribe.Grouped(scribe.Text[int](name + "{").
			Append(body).
			Append(scribe.LineBreak[int]()).
			Append(scribe.Text[int]("}")))
	}

	short := record("Point", []string{"X: 1", "Y: 2"})
	got, _ := scribe.ToString(short, scribe.LayoutOptions{
		PageWidth:  &scribe.PageWidth{Width: 40, RibbonRatio: 1.0},
		LayoutMode: scribe.Default,
	})
	fmt.Println(got)

	long := record("Person", []string{`Name: "Alice"`, "Age: 30", `Email: "alice@example.com"`})
	got, _ = scribe.ToString(long, scribe.LayoutOptions{
		PageWidth:  &scribe.PageWidth{Width: 40, RibbonRatio: 1.0},
		LayoutMode: scribe.Default,
	})
	fmt.Println(got)

	// Output:
	// Point{ X: 1, Y: 2 }
	// Person{
	//   Name: "Alice",
	//   Age: 30,
	//   Email: "alice@example.com"
	// }
}

// ExampleHanging shows a hanging indent: the first line starts at the
// current column, wrapped continuation lines sit further indented by the
// hang amount past that column.
func ExampleHanging() {
	doc := scribe.Text[int]("- ").Append(scribe.Hanging(2,
		scribe.Reflow[int]("a note that wraps across more than one line")))

	got, _ := scribe.ToString(doc, scribe.LayoutOptions{
		PageWidth:  &scribe.PageWidth{Width: 20, RibbonRatio: 1.0},
		LayoutMode: scribe.Default,
	})
	fmt.Println(got)

	// Output:
	// - a note that wraps
	//     across more than
	//     one line
}

// ExampleSimple shows Simple mode ignoring every [scribe.Choice] and
// [scribe.Nested]/[scribe.Aligned] block, always taking the broken branch
// with no indentation at all.
func ExampleSimple() {
	doc := scribe.Grouped(scribe.Hanging(2, scribe.Text[int]("a").
		Append(scribe.LineBreak[int]()).
		Append(scribe.Text[int]("b"))))

	got, _ := scribe.ToString(doc, scribe.LayoutOptions{LayoutMode: scribe.Simple})
	fmt.Println(got)

	// Output:
	// a
	// b
}
