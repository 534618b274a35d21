package cli

import (
	"fmt"
	"io"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// Table row based terminal table
type Table interface {
	SetHeader(v ...interface{}) Table
	AddRow(v ...interface{}) Table
	Render()
}

type table struct {
	tw gotable.Writer
}

// NewTable render into w
func NewTable(w io.Writer) Table {
	t := &table{
		tw: gotable.NewWriter(),
	}
	style := gotable.StyleDefault
	style.Format.Header = text.FormatDefault
	t.tw.SetStyle(style)
	t.tw.SetOutputMirror(w)
	return t
}

func (t *table) SetHeader(v ...interface{}) Table {
	t.tw.AppendHeader(gotable.Row(v))
	return t
}

func (t *table) AddRow(cells ...interface{}) Table {
	t.tw.AppendRows([]gotable.Row{gotable.Row(cells)})
	return t
}

func (t *table) Render() {
	t.tw.Render()
}

const nilLink = "nil"

// ListTable render chain values one node per row: position, value and the value it links to
func ListTable[T any](w io.Writer, values []T) {
	t := NewTable(w).SetHeader("#", "value", "next")
	for i, v := range values {
		next := nilLink
		if i+1 < len(values) {
			next = fmt.Sprintf("%#v", values[i+1])
		}
		t.AddRow(i, fmt.Sprintf("%#v", v), next)
	}
	t.Render()
}
