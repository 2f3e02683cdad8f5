package scribe

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestFlattenedWidth(t *testing.T) {
	tests := map[string]struct {
		in            Document[int]
		want          int
		wantHasWidth  bool
	}{
		"Empty":            {Empty[int](), 0, true},
		"HardLine":         {HardLine[int](), 0, false},
		"WhiteSpace":       {WhiteSpace[int](4), 4, true},
		"Text":             {Text[int]("hello"), 5, true},
		"AppendTexts":      {Text[int]("ab").Append(Text[int]("cde")), 5, true},
		"AppendHardLine":   {Text[int]("ab").Append(HardLine[int]()), 0, false},
		"AppendWithEmpty":  {Empty[int]().Append(Text[int]("x")), 1, true},
		"AlternativeWidth": {Alternative(Text[int]("xxxxx"), Text[int]("x")), 1, true},
		"ChoiceWidth":      {Choice(Text[int]("xx"), Text[int]("xxxxx")), 2, true},
		"FlattenedOfHardLine": {
			Flattened(Text[int]("a").Append(HardLine[int]())), 0, false,
		},
		"NestedWidth":   {Nested(2, Text[int]("ab")), 2, true},
		"AlignedWidth":  {Aligned(Text[int]("abc")), 3, true},
		"AnnotatedWidth": {Annotated(1, Text[int]("abcd")), 4, true},
		"LineBreak":      {LineBreak[int](), 1, true},
		"ZeroWidthLineBreak": {ZeroWidthLineBreak[int](), 0, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.in.FlattenedWidth()
			assert.Equalsf(t, ok, tt.wantHasWidth, "FlattenedWidth() ok for %s", name)
			if tt.wantHasWidth {
				assert.Equalsf(t, got, tt.want, "FlattenedWidth() for %s", name)
			}
		})
	}
}

func TestAppendElidesEmpty(t *testing.T) {
	left := Text[int]("left")
	combined := left.Append(Empty[int]())
	got, err := ToString(combined)
	assert.NoError(t, err)
	assert.EqualValues(t, got, "left")

	combined = Empty[int]().Append(left)
	got, err = ToString(combined)
	assert.NoError(t, err)
	assert.EqualValues(t, got, "left")
}

func TestWhiteSpacePanicsOnNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("WhiteSpace(-1): want panic but got none")
		}
	}()
	WhiteSpace[int](-1)
}

func TestTextPanicsOnNewline(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error(`Text("a\nb"): want panic but got none`)
		}
	}()
	Text[int]("a\nb")
}

func TestNestedPanicsOnNegativeAmount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Nested(-1, ...): want panic but got none")
		}
	}()
	Nested(-1, Text[int]("x"))
}
