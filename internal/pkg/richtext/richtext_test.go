package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Sanitizes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHTML string
	}{
		{
			name:     "keeps editor formatting",
			input:    `<p>Hello <strong>world</strong></p><ol><li data-list="bullet">one</li></ol>`,
			wantHTML: `<p>Hello <strong>world</strong></p><ol><li data-list="bullet">one</li></ol>`,
		},
		{
			name:     "removes script with its content",
			input:    `<p>hi</p><script>alert("x")</script>`,
			wantHTML: `<p>hi</p>`,
		},
		{
			name:     "removes event handlers",
			input:    `<p onclick="steal()">click</p><img src="/a.png" onerror="steal()">`,
			wantHTML: `<p>click</p><img src="/a.png"/>`,
		},
		{
			name:     "removes javascript urls",
			input:    `<a href="javascript:alert(1)">x</a><a href=" JaVaScRiPt:alert(1)">y</a>`,
			wantHTML: `<a>x</a><a>y</a>`,
		},
		{
			name:     "drops image without safe source",
			input:    `<p>a</p><img src="javascript:alert(1)">`,
			wantHTML: `<p>a</p>`,
		},
		{
			name:     "adds rel to blank targets",
			input:    `<a href="https://example.com" target="_blank" rel="opener">ex</a>`,
			wantHTML: `<a href="https://example.com" target="_blank" rel="noopener noreferrer">ex</a>`,
		},
		{
			name:     "unwraps unknown tags",
			input:    `<p><font color="red">red</font></p>`,
			wantHTML: `<p>red</p>`,
		},
		{
			name:     "keeps https video embeds only",
			input:    `<iframe class="ql-video" src="https://video.test/1"></iframe><iframe src="http://video.test/2"></iframe>`,
			wantHTML: `<iframe class="ql-video" src="https://video.test/1"></iframe>`,
		},
		{
			name:     "drops style attributes",
			input:    `<span style="background:url(javascript:x)">s</span>`,
			wantHTML: `<span>s</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(tt.input, FormatHTML)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTML, doc.HTML)
		})
	}
}

func TestRender_EmptyDocuments(t *testing.T) {
	for _, input := range []string{"", "   ", "<p><br></p>", "<p> </p><p><br/></p>"} {
		doc, err := Render(input, FormatAuto)
		require.NoError(t, err)
		assert.True(t, doc.Empty, "input %q", input)
		assert.Equal(t, "", doc.Text)
	}

	doc, err := Render(`<p><img src="https://cdn.test/a.png"></p>`, FormatHTML)
	require.NoError(t, err)
	assert.False(t, doc.Empty)
}

func TestRender_Markdown(t *testing.T) {
	doc, err := Render("# Intro\n\nSome **bold** text.\n\n<script>alert(1)</script>\n", FormatAuto)
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, "<h1>Intro</h1>")
	assert.Contains(t, doc.HTML, "<strong>bold</strong>")
	assert.NotContains(t, doc.HTML, "script")
	assert.Equal(t, "Intro\nSome bold text.", doc.Text)
	assert.False(t, doc.Empty)
}

func TestRender_PlainText(t *testing.T) {
	doc, err := Render("<h2>Title</h2><p>First   line</p><ul><li>a</li><li>b</li></ul>", FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "Title\nFirst line\na\nb", doc.Text)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render("x", Format("rtf"))
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatHTML, Detect("  <p>x</p>"))
	assert.Equal(t, FormatMarkdown, Detect("# x"))
	assert.Equal(t, FormatMarkdown, Detect("a < b"))
}

func TestSafeURL(t *testing.T) {
	assert.True(t, safeURL("a", "/relative"))
	assert.True(t, safeURL("a", "page?x=a:b"))
	assert.True(t, safeURL("a", "mailto:x@y.z"))
	assert.False(t, safeURL("a", "vbscript:x"))
	assert.False(t, safeURL("a", "java\tscript:x"))
	assert.True(t, safeURL("img", "data:image/png;base64,AAAA"))
	assert.False(t, safeURL("a", "data:text/html;base64,AAAA"))
}
