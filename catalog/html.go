package catalog

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ZaguanLabs/locdisplay"
)

// skipAttr excludes a table row from import.
const skipAttr = "data-no-translate"

// ParseHTMLTable extracts key/text pairs from the first two cells of every
// table row in an HTML document, as produced by spreadsheet "save as web
// page" exports. Header rows (th cells), rows marked data-no-translate and
// rows with an empty key are skipped.
func ParseHTMLTable(r io.Reader) (map[string]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, &locdisplay.CatalogError{Path: "html", Message: "failed to parse HTML", Cause: err}
	}

	doc := goquery.NewDocumentFromNode(root)
	entries := make(map[string]string)

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if _, skip := row.Attr(skipAttr); skip {
			return
		}
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}
		key := cellText(cells.Eq(0))
		if key == "" {
			return
		}
		entries[key] = cellText(cells.Eq(1))
	})

	return entries, nil
}

// ImportHTML parses an HTML table and merges it into c under lang.
func (c *Catalog) ImportHTML(lang string, r io.Reader) (int, error) {
	entries, err := ParseHTMLTable(r)
	if err != nil {
		return 0, err
	}
	c.Add(lang, entries)
	return len(entries), nil
}

// cellText collapses internal whitespace the way a browser renders it.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
