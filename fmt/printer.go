package fmt

import (
	sysfmt "fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/qjson"
)

var (
	Green      = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan       = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow     = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red        = color.New(color.FgRed, color.Bold).SprintFunc()
	Blue       = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
		Red,
		Blue,
	}
)

// Printer prints format with every argument colored, always ends with newline
type Printer func(format string, args ...interface{})

// NewPrinter print colored args to w, args are formatted by their own verb
func NewPrinter(w io.Writer) Printer {
	return func(format string, args ...interface{}) {
		rawPrint(w, format, args, false)
	}
}

// NewJSONPrinter same as NewPrinter but map/struct/slice args are printed as json
func NewJSONPrinter(w io.Writer) Printer {
	return func(format string, args ...interface{}) {
		rawPrint(w, format, args, true)
	}
}

// PrependTime prefix every line with wall clock time
func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(timeStr(time.Now())+" "+format, args...)
	}
}

// Eprint with color to stderr
var Eprint = NewPrinter(os.Stderr)

func rawPrint(w io.Writer, format string, args []interface{}, complexToJSON bool) {
	if len(args) == 0 {
		sysfmt.Fprintln(w, format)
		return
	}
	var withoutColor map[int]bool
	if complexToJSON {
		withoutColor = make(map[int]bool)
		for i := range args {
			withoutColor[i] = isComplexValue(args[i])
		}
	}
	/* keep caller's slice untouched */
	args = append([]interface{}(nil), args...)
	sysfmt.Fprintf(w, rewriteFormat(format, nil), colorArgs(rewriteArgsToString(format, args, complexToJSON), withoutColor)...)
}

func rewriteArgsToString(format string, args []interface{}, complexToJSON bool) []interface{} {
	rewriteFormat(format, func(idx int, sysfmtToken string) {
		if idx >= len(args) {
			return
		}
		if complexToJSON && isComplexValue(args[idx]) {
			args[idx] = string(qjson.PrettyMarshal(args[idx]))
		} else {
			args[idx] = sysfmt.Sprintf(sysfmtToken, args[idx])
		}
	})
	return args
}

func rewriteFormat(format string, cb func(int, string)) string {
	if cb == nil {
		cb = func(int, string) {}
	}
	var idx int

	var newsysfmt []rune
	runes := []rune(format)
	for i := 0; i < len(runes); {
		/* skip double % */
		if runes[i] == '%' && i < len(runes)-1 && runes[i+1] == '%' {
			newsysfmt = append(newsysfmt, runes[i], runes[i+1])
			i += 2
			continue
		}
		/* find format token like %[^a-zA-Z] */
		if runes[i] == '%' {
			j := i + 1
			for ; j < len(runes); j++ {
				if (runes[j] >= 'A' && runes[j] <= 'Z') || (runes[j] >= 'a' && runes[j] <= 'z') {
					break
				}
			}
			if j >= len(runes) {
				j = len(runes) - 1
			}
			cb(idx, string(runes[i:j+1]))
			idx++
			newsysfmt = append(newsysfmt, '%', 's')
			i = j + 1
			continue
		}
		newsysfmt = append(newsysfmt, runes[i])
		i++
	}
	/* always end with newline */
	if len(newsysfmt) == 0 || newsysfmt[len(newsysfmt)-1] != '\n' {
		newsysfmt = append(newsysfmt, '\n')
	}
	return string(newsysfmt)
}

func colorArgs(args []interface{}, withoutColor map[int]bool) []interface{} {
	ret := make([]interface{}, len(args))
	for i, v := range args {
		if withoutColor != nil && withoutColor[i] {
			ret[i] = args[i]
			continue
		}
		ret[i] = colorFuncs[i%len(colorFuncs)](v)
	}
	return ret
}

func isComplexValue(v interface{}) bool {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return false
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice:
		return true
	default:
		return false
	}
}

func timeStr(tm time.Time) string {
	return tm.Format("15:04:05")
}
