package gridtone

import (
	"fmt"
	"strconv"
	"strings"
)

// Snippet identifies a generated DrawingTemplate factory.
type Snippet struct {
	ID   string
	Name string
}

// RenderSnippet formats a template as a Swift DrawingTemplate factory
// method, indented for pasting into the template catalog source file.
func RenderSnippet(s Snippet, t *Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "private static func make%s() -> DrawingTemplate {\n", s.Name)
	fmt.Fprintf(&b, "            let width = %d\n", t.Width)
	fmt.Fprintf(&b, "            let height = %d\n", t.Height)
	b.WriteString("            let colors = [\n")
	for i, row := range t.Grid {
		b.WriteString("                ")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		if i < len(t.Grid)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("            ]\n")
	fmt.Fprintf(&b,
		"            return DrawingTemplate(id: %q, name: %q, width: width, height: height, colors: colors)\n",
		s.ID, s.Name)
	b.WriteString("        }")
	return b.String()
}

// RenderComment formats the used-index diagnostic header emitted above a
// snippet, e.g. "// Used palette indexes (32 fixed buckets): 0:red, 9:indigo".
func RenderComment(modeDesc string, t *Template) string {
	parts := make([]string, 0, len(t.Used))
	for _, idx := range t.Used {
		name := ""
		if idx < len(t.Palette) {
			name = t.Palette[idx].Name
		}
		parts = append(parts, strconv.Itoa(idx)+":"+name)
	}
	return fmt.Sprintf("// Used palette indexes (%s): %s", modeDesc, strings.Join(parts, ", "))
}

// ModeDescription summarizes the palette source for the diagnostic header.
func ModeDescription(opts Options, palette Palette) string {
	if opts.Mode == ModeFixed {
		return fmt.Sprintf("%d fixed buckets", opts.PaletteSize)
	}
	return fmt.Sprintf("%d %s buckets", len(palette), opts.Mode)
}
