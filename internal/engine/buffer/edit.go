package buffer

import "fmt"

// Edit replaces Range with NewText. An empty range inserts and an empty
// NewText deletes.
type Edit struct {
	Range   Range
	NewText string
}

func NewInsert(pos Position, text string) Edit { return Edit{Range: NewRange(pos, pos), NewText: text} }
func NewDelete(r Range) Edit                   { return Edit{Range: r} }

func (e Edit) IsNoOp() bool {
	return e.NewText == "" && e.Range.IsEmpty()
}

func (e Edit) String() string {
	switch {
	case e.Range.IsEmpty():
		return fmt.Sprintf("insert %q at %s", e.NewText, e.Range.Start)
	case e.NewText == "":
		return fmt.Sprintf("delete %s", e.Range)
	default:
		return fmt.Sprintf("replace %s with %q", e.Range, e.NewText)
	}
}
