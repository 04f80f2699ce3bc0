package mailer

import "sync"

// MockMailer records sent emails instead of delivering them.
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentEmail
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

type SentEmail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, SentEmail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}
