package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"
)

// listSeparators matches any run of the delimiters accepted between
// list items: spaces, commas, and semicolons, in any mix.
var listSeparators = regexp.MustCompile(`[ ,;]+`)

// SplitList splits a raw flag or argument value into its items.
// Empty items produced by leading/trailing delimiters are dropped.
func SplitList(value string) []string {
	var items []string
	for _, item := range listSeparators.Split(value, -1) {
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ListValue is a pflag.Value that accumulates delimited list items
// across repeated uses of a flag. Each Set call splits its value on
// the accepted delimiters and appends the items to the backing slice,
// so `-i two-fer -i "leap;bob"` yields [two-fer leap bob].
type ListValue struct {
	items *[]string
}

// NewListValue creates a ListValue backed by the given slice.
func NewListValue(p *[]string) *ListValue {
	return &ListValue{items: p}
}

// Set appends the split items of value. It never fails; there is no
// invalid list syntax, only delimiters and items.
func (l *ListValue) Set(value string) error {
	*l.items = append(*l.items, SplitList(value)...)
	return nil
}

// String returns the accumulated items joined with commas.
func (l *ListValue) String() string {
	if l.items == nil {
		return ""
	}
	return strings.Join(*l.items, ",")
}

// Type describes the value for help output.
func (l *ListValue) Type() string {
	return "list"
}

// compile-time interface check
var _ pflag.Value = (*ListValue)(nil)
