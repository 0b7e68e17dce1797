package markdown_test

import (
	"testing"

	"aimlaw-web/pkg/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := markdown.NewRenderer()

	t.Run("Should render emphasis and links", func(t *testing.T) {
		out, err := r.Render("Contacting us does **not** create a relationship. See [policy](/en/privacy).")
		require.NoError(t, err)
		assert.Contains(t, string(out), "<strong>not</strong>")
		assert.Contains(t, string(out), `href="/en/privacy"`)
	})

	t.Run("Should strip scripts", func(t *testing.T) {
		out, err := r.Render("Hi <script>alert(1)</script> there")
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>")
	})

	t.Run("Should keep Chinese text intact", func(t *testing.T) {
		out, err := r.Render("通过本网站联系我们**不会**建立律师与客户关系。")
		require.NoError(t, err)
		assert.Contains(t, string(out), "<strong>不会</strong>")
	})
}
