package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitleFromH1(t *testing.T) {
	html := "<h1> Regras da ANAC para voo noturno </h1><p>corpo</p>"
	title := ExtractTitle(html, time.Now())
	assert.Equal(t, "Regras da ANAC para voo noturno", title)
}

func TestExtractTitleFallsBackToH2(t *testing.T) {
	html := "<div><h2>Atualização de firmware</h2><p>corpo</p></div>"
	title := ExtractTitle(html, time.Now())
	assert.Equal(t, "Atualização de firmware", title)
}

func TestExtractTitlePrefersFirstH1(t *testing.T) {
	html := "<h2>segundo nível</h2><h1>primeiro</h1><h1>outro</h1>"
	title := ExtractTitle(html, time.Now())
	assert.Equal(t, "primeiro", title)
}

func TestExtractTitleWithoutHeadings(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	title := ExtractTitle("<p>só parágrafos</p>", now)
	assert.Equal(t, "Conteúdo gerado em 15/03/2026", title)
}

func TestSanitizeRemovesScript(t *testing.T) {
	dirty := `<p>ok</p><script>alert(1)</script><a href="javascript:x()">link</a>`
	clean := Sanitize(dirty)
	assert.Contains(t, clean, "<p>ok</p>")
	assert.NotContains(t, clean, "script")
	assert.NotContains(t, clean, "javascript:")
}

func TestRandomCredentialIsUnique(t *testing.T) {
	a := RandomCredential()
	b := RandomCredential()
	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}

func TestGetSafeContentTypeDetectsPNG(t *testing.T) {
	payload := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	contentType, err := GetSafeContentType(strings.NewReader(string(payload)))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}
