package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/notes-api/config"
)

func TestRenderSignupOTP(t *testing.T) {
	cfg := &config.Config{AppName: "notes-api", CompanyName: "HD Notes"}
	data := NewSignupOTPData(cfg, "Ann", "ann@x.com", "012345",
		WithExpiresIn(5*time.Minute), WithIP("10.0.0.1"), WithUserAgent("<script>"))

	subject, text, html, err := Render(SignupOTP, data)
	require.NoError(t, err)
	assert.Equal(t, "Your OTP Code for signing up on notes-api", subject)
	assert.Contains(t, text, "Your OTP is: 012345. It will expire in 5 minutes.")
	assert.Contains(t, text, "10.0.0.1")
	assert.Contains(t, html, "012345")
	assert.NotContains(t, html, "<script>", "html body must escape user agent")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}
