package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltIn(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateJobOffer, TemplateData{
		"WorkerName": "Ann",
		"JobTitle":   "Fix sink",
		"Location":   "Boston",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Ann")
	assert.Contains(t, html, "<b>Fix sink</b> in Boston")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestTemplateManager_EscapesHTML(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateJobOffer, TemplateData{
		"WorkerName": "<script>",
		"JobTitle":   "Paint",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestTemplateManager_LoadTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.html"), []byte("Hi {{.Name}}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))

	tm := NewTemplateManager()
	require.NoError(t, tm.LoadTemplates(dir))

	out, err := tm.Render("custom", TemplateData{"Name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Bob", out)

	_, err = tm.Render("notes", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SMTPConfig
		wantErr bool
	}{
		{"ok", SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "a@b.c"}, false},
		{"no host", SMTPConfig{Port: 587, FromEmail: "a@b.c"}, true},
		{"bad port", SMTPConfig{Host: "smtp.example.com", Port: 70000, FromEmail: "a@b.c"}, true},
		{"no from", SMTPConfig{Host: "smtp.example.com", Port: 587}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := NewSMTPProvider(&cfg, nil).Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMTPProvider_SendWithoutRecipients(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "a@b.c"}, nil)
	err := p.Send(&Email{Subject: "x"})
	assert.Error(t, err)
}

func TestMockProvider_SendTemplate(t *testing.T) {
	m := NewMockProvider(NewTemplateManager())

	err := m.SendTemplate([]string{"ann@example.com"}, "Offer", TemplateJobOffer, TemplateData{"WorkerName": "Ann", "JobTitle": "Paint"})
	require.NoError(t, err)

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ann@example.com"}, sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, "Paint")
}
