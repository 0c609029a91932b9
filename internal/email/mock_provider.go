package email

import "sync"

// MockProvider запоминает письма вместо отправки.
// Используется, когда email выключен, и в тестах.
type MockProvider struct {
	renderer TemplateRenderer

	mu   sync.Mutex
	sent []Email
}

func NewMockProvider(renderer TemplateRenderer) *MockProvider {
	return &MockProvider{renderer: renderer}
}

func (m *MockProvider) Send(email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, *email)
	return nil
}

func (m *MockProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	body := ""
	if m.renderer != nil {
		rendered, err := m.renderer.Render(templateName, data)
		if err != nil {
			return err
		}
		body = rendered
	}
	return m.Send(&Email{To: to, Subject: subject, HTMLBody: body})
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }

// Sent возвращает копию отправленных писем
func (m *MockProvider) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.sent...)
}
