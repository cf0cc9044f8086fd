package email_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ridehail/pkg/email"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/validator"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "rider@example.com",
		Subject:  "Welcome to Ridehail",
		BodyHTML: "<p>Hello</p>",
		Tag:      "welcome",
	}
}

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validParams().Validate())

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
		field  string
	}{
		{"missing recipient", func(p *email.SendEmailParams) { p.SendTo = "" }, "send_to"},
		{"malformed recipient", func(p *email.SendEmailParams) { p.SendTo = "user@" }, "send_to"},
		{"missing subject", func(p *email.SendEmailParams) { p.Subject = "" }, "subject"},
		{"missing body", func(p *email.SendEmailParams) { p.BodyHTML = "" }, "body_html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, email.ErrInvalidParams)
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
		})
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	sender := email.NewDevSender(dir)
	require.NoError(t, sender.SendEmail(context.Background(), validParams()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	assert.True(t, strings.HasSuffix(htmlFile, "_welcome.html"))

	body, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello</p>", string(body))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "rider@example.com", meta["send_to"])
	assert.Equal(t, "welcome", meta["tag"])
}

func TestDevSenderRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := email.NewDevSender(dir).SendEmail(context.Background(), email.SendEmailParams{})
	require.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := email.NewLogSender(logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter()))
	require.NoError(t, s.SendEmail(context.Background(), validParams()))
	assert.Contains(t, buf.String(), `"to":"r***@example.com"`)
	assert.NotContains(t, buf.String(), "rider@example.com")

	require.ErrorIs(t, email.NewLogSender(nil).SendEmail(context.Background(), email.SendEmailParams{}), email.ErrInvalidParams)
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "no-reply@ridehail.app",
		SupportEmail:         "support@ridehail.app",
	}
	_, err := email.NewPostmarkClient(valid)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*email.Config)
	}{
		{"missing server token", func(c *email.Config) { c.PostmarkServerToken = "" }},
		{"missing account token", func(c *email.Config) { c.PostmarkAccountToken = "" }},
		{"missing sender", func(c *email.Config) { c.SenderEmail = "" }},
		{"bad sender", func(c *email.Config) { c.SenderEmail = "nope" }},
		{"bad support", func(c *email.Config) { c.SupportEmail = "@" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)
			_, err := email.NewPostmarkClient(cfg)
			require.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}

func TestPostmarkClientValidatesBeforeSending(t *testing.T) {
	t.Parallel()

	c, err := email.NewPostmarkClient(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "no-reply@ridehail.app",
		SupportEmail:         "support@ridehail.app",
	})
	require.NoError(t, err)
	err = c.SendEmail(context.Background(), email.SendEmailParams{SendTo: "bad"})
	require.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	s, err := email.NewFromConfig(email.Config{DevDir: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, s)

	s, err = email.NewFromConfig(email.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &email.LogSender{}, s)

	_, err = email.NewFromConfig(email.Config{PostmarkServerToken: "only-one"}, nil)
	require.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestEmailSenderMock(t *testing.T) {
	t.Parallel()

	m := &mockSender{}
	m.On("SendEmail", mock.Anything, validParams()).Return(nil).Once()

	var sender email.EmailSender = m
	require.NoError(t, sender.SendEmail(context.Background(), validParams()))
	m.AssertExpectations(t)
}
