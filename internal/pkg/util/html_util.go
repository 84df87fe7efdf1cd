package util

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize limpa o HTML enviado por usuários antes da persistência
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

// ExtractTitle deriva o título de um HTML gerado: texto do primeiro <h1>,
// senão do primeiro <h2>, senão um título com a data atual.
func ExtractTitle(html string, now time.Time) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
			return title
		}
		if title := strings.TrimSpace(doc.Find("h2").First().Text()); title != "" {
			return title
		}
	}
	return "Conteúdo gerado em " + now.Format("02/01/2006")
}
