package email

import "lintar_backend/internal/config"

// Provider определяет интерфейс для отправки email
type Provider interface {
	Send(to, subject, body string) error
}

// NewProvider выбирает реализацию по конфигурации.
// Если email выключен, возвращает no-op провайдер: операции,
// инициирующие письма, не должны зависеть от SMTP.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.Email.Enabled {
		return &NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

// NoopProvider молча глотает письма (тесты, локальная разработка)
type NoopProvider struct{}

func (p *NoopProvider) Send(to, subject, body string) error {
	return nil
}
