package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

// Print margins around the receiptdoc page box.
const (
	pageMarginVMM = 10.0
	pageMarginHMM = 12.0
)

// buildHTML renders the draw program as a self-contained HTML page for the
// browser backend. Fonts are embedded as base64 data URLs so the printed
// page uses exactly the bundled fonts; the browser's text stack handles
// Devanagari shaping.
func buildHTML(doc *receiptdoc.Document, res receiptdoc.Provider) (string, error) {
	data := htmlData{
		Title: doc.Title,
		PageCSS: template.CSS(fmt.Sprintf("size: %.0fmm %.0fmm; margin: %.0fmm %.0fmm;",
			receiptdoc.PageWidthMM, receiptdoc.PageHeightMM, pageMarginVMM, pageMarginHMM)),
		BodyCSS: template.CSS(fmt.Sprintf("width: %.0fmm;",
			receiptdoc.PageWidthMM-2*pageMarginHMM)),
	}

	if res != nil {
		if regular, err := res.Font(receiptdoc.FontRegular); err == nil && len(regular) > 0 {
			data.FontFaces += fontFaceCSS("normal", regular)
		}
		if bold, err := res.Font(receiptdoc.FontBold); err == nil && len(bold) > 0 {
			data.FontFaces += fontFaceCSS("bold", bold)
		}
	}

	for _, sec := range doc.Sections {
		data.Sections = append(data.Sections, htmlSection(sec))
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("renderer: execute receipt template: %w", err)
	}
	return buf.String(), nil
}

type htmlData struct {
	Title     string
	PageCSS   template.CSS
	BodyCSS   template.CSS
	FontFaces template.CSS
	Sections  []sectionData
}

// fontFaceCSS assembles a full @font-face block in Go. html/template
// rejects interpolation inside a CSS url(), so the data URL cannot live
// in the template body.
func fontFaceCSS(weight string, ttf []byte) template.CSS {
	return template.CSS(fmt.Sprintf(`@font-face {
    font-family: "Receipt";
    src: url(data:font/ttf;base64,%s) format("truetype");
    font-weight: %s;
  }
  `, base64.StdEncoding.EncodeToString(ttf), weight))
}

type sectionData struct {
	Name  string
	Class string
	Style template.CSS
	Rows  []rowData
}

type rowData struct {
	Height float64
	Cells  []cellData
}

type cellData struct {
	WidthPct float64
	Align    string
	Lines    []lineData
	Image    template.URL
	Caption  string
}

type lineData struct {
	Text  string
	Style template.CSS
}

func htmlSection(sec receiptdoc.Section) sectionData {
	out := sectionData{Name: sec.Name, Class: "section"}

	var css []string
	if sec.Box.Border {
		style := "solid"
		if sec.Box.Dashed {
			style = "dashed"
		}
		css = append(css, fmt.Sprintf("border:0.8px %s #787878", style))
		if sec.Box.Rounded {
			css = append(css, "border-radius:6px")
		}
		css = append(css, "padding:6px 10px")
	}
	if f := sec.Box.Fill; f != nil {
		css = append(css, fmt.Sprintf("background:rgb(%d,%d,%d)", f.R, f.G, f.B))
	}
	out.Style = template.CSS(strings.Join(css, ";"))

	for _, r := range sec.Rows {
		row := rowData{Height: r.Height}
		for _, c := range r.Cells {
			cell := cellData{
				WidthPct: float64(c.Span) / 12 * 100,
				Align:    alignCSS(c.Align),
			}
			if c.Image != nil {
				cell.Image = template.URL("data:image/" + c.Image.Ext + ";base64," +
					base64.StdEncoding.EncodeToString(c.Image.Bytes))
				cell.Caption = c.Image.Caption
			}
			for _, line := range c.Lines {
				cell.Lines = append(cell.Lines, lineData{Text: line.Text, Style: lineCSS(line)})
			}
			row.Cells = append(row.Cells, cell)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func alignCSS(a receiptdoc.Align) string {
	switch a {
	case receiptdoc.AlignCenter:
		return "center"
	case receiptdoc.AlignRight:
		return "right"
	default:
		return "left"
	}
}

func lineCSS(line receiptdoc.TextLine) template.CSS {
	css := []string{fmt.Sprintf("font-size:%.1fpt", line.Style.SizePt)}
	if line.Style.Bold {
		css = append(css, "font-weight:bold")
	}
	if line.Style.Italic {
		css = append(css, "font-style:italic")
	}
	if line.Style.Mono {
		css = append(css, "font-family:monospace")
	}
	if c := line.Style.Color; c != nil {
		css = append(css, fmt.Sprintf("color:rgb(%d,%d,%d)", c.R, c.G, c.B))
	}
	if line.Top > 0 {
		css = append(css, fmt.Sprintf("margin-top:%.1fmm", line.Top/2))
	}
	return template.CSS(strings.Join(css, ";"))
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="ne">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  @page { {{.PageCSS}} }
  {{.FontFaces}}body {
    font-family: "Receipt", "Noto Sans Devanagari", "Mangal", sans-serif;
    color: #1a1a1a;
    margin: 0;
    {{.BodyCSS}}
  }
  .section { margin-bottom: 4mm; }
  .row { display: flex; align-items: flex-start; }
  .cell { box-sizing: border-box; }
  .cell img { max-width: 22mm; max-height: 22mm; }
  .cell p { margin: 0; line-height: 1.35; }
  .caption { font-size: 6pt; color: #5f6368; }
</style>
</head>
<body>
{{range .Sections}}<div class="section" data-section="{{.Name}}" style="{{.Style}}">
{{range .Rows}}  <div class="row" style="min-height:{{.Height}}mm">
{{range .Cells}}    <div class="cell" style="width:{{printf "%.3f" .WidthPct}}%;text-align:{{.Align}}">
{{if .Image}}      <img src="{{.Image}}" alt="">{{if .Caption}}<p class="caption">{{.Caption}}</p>{{end}}
{{end}}{{range .Lines}}      <p style="{{.Style}}">{{.Text}}</p>
{{end}}    </div>
{{end}}  </div>
{{end}}</div>
{{end}}</body>
</html>
`))
