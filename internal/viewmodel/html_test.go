package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	src := `<html><head><style>p { color: red }</style></head>
<body><h1>Kontrak  Kerja</h1><p>Yth. <b>Budi</b>,</p><p>Silakan&nbsp;tanda tangani.</p>
<script>alert(1)</script></body></html>`
	require.Equal(t, "Kontrak Kerja\nYth. Budi,\nSilakan tanda tangani.", PlainText(src))
}

func TestPlainTextInlineTags(t *testing.T) {
	require.Equal(t, "Dear Budi, please sign here.",
		PlainText(`<p>Dear <b>Budi</b>, please sign <a href="#">here</a>.</p>`))
	require.Equal(t, "bold text", PlainText(`<b>bold</b> <i>text</i>`))
	require.Equal(t, "Contract No.123", PlainText(`Contract No.<span>123</span>`))
}

func TestPlainTextEmpty(t *testing.T) {
	require.Equal(t, "", PlainText(""))
	require.Equal(t, "hello", PlainText("hello"))
}
