// ABOUTME: Generates JSX-style source for an Example, shown by the "Show Code" panel.
// ABOUTME: Attributes equal to their defaults are omitted, matching how the snippet would be written by hand.
package playground

import (
	"fmt"
	"strings"
)

// Snippet returns source code that reproduces ex.
func Snippet(ex Example) string {
	switch ex := ex.(type) {
	case ButtonExample:
		return buttonSnippet(ex)
	case CardExample:
		return cardSnippet(ex)
	case FormExample:
		return formSnippet(ex)
	case Placeholder:
		return fmt.Sprintf("{/* %s */}", ex.Message)
	default:
		return ""
	}
}

func buttonSnippet(b ButtonExample) string {
	var attrs []string
	if b.Variant != "" && b.Variant != VariantDefault {
		attrs = append(attrs, fmt.Sprintf("variant=%q", string(b.Variant)))
	}
	if b.Size != "" && b.Size != SizeDefault {
		attrs = append(attrs, fmt.Sprintf("size=%q", string(b.Size)))
	}
	if b.Disabled {
		attrs = append(attrs, "disabled")
	}
	open := "<Button"
	if len(attrs) > 0 {
		open += " " + strings.Join(attrs, " ")
	}
	return open + ">" + b.Label + "</Button>"
}

func cardSnippet(c CardExample) string {
	var b strings.Builder
	b.WriteString("<Card className=\"w-[350px]\">\n")
	b.WriteString("  <CardHeader>\n")
	fmt.Fprintf(&b, "    <CardTitle>%s</CardTitle>\n", c.Title)
	fmt.Fprintf(&b, "    <CardDescription>%s</CardDescription>\n", c.Description)
	b.WriteString("  </CardHeader>\n")
	b.WriteString("  <CardContent>\n")
	fmt.Fprintf(&b, "    <p>%s</p>\n", c.Body)
	b.WriteString("  </CardContent>\n")
	b.WriteString("  <CardFooter>\n")
	fmt.Fprintf(&b, "    %s\n", buttonSnippet(c.Action))
	b.WriteString("  </CardFooter>\n")
	b.WriteString("</Card>")
	return b.String()
}

func formSnippet(f FormExample) string {
	var b strings.Builder
	b.WriteString("<Card className=\"w-[350px]\">\n")
	b.WriteString("  <CardHeader>\n")
	fmt.Fprintf(&b, "    <CardTitle>%s</CardTitle>\n", f.Title)
	fmt.Fprintf(&b, "    <CardDescription>%s</CardDescription>\n", f.Description)
	b.WriteString("  </CardHeader>\n")
	b.WriteString("  <CardContent className=\"space-y-4\">\n")
	for _, field := range f.Fields {
		b.WriteString("    <div className=\"space-y-2\">\n")
		fmt.Fprintf(&b, "      <Label htmlFor=%q>%s</Label>\n", field.ID, field.Label)
		if field.Type != "" && field.Type != "text" {
			fmt.Fprintf(&b, "      <Input id=%q type=%q placeholder=%q />\n", field.ID, field.Type, field.Placeholder)
		} else {
			fmt.Fprintf(&b, "      <Input id=%q placeholder=%q />\n", field.ID, field.Placeholder)
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("    <div className=\"flex items-center space-x-2\">\n")
	b.WriteString("      <Checkbox id=\"terms\" />\n")
	fmt.Fprintf(&b, "      <label htmlFor=\"terms\">%s</label>\n", f.TermsLabel)
	b.WriteString("    </div>\n")
	b.WriteString("  </CardContent>\n")
	b.WriteString("  <CardFooter>\n")
	fmt.Fprintf(&b, "    %s\n", buttonSnippet(f.Submit))
	b.WriteString("  </CardFooter>\n")
	b.WriteString("</Card>")
	return b.String()
}
