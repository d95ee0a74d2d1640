package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrContactInvalidInput 在联系表单缺少字段或邮箱格式非法时返回
	ErrContactInvalidInput = errors.New("invalid contact input")
	// ErrEmailNotConfigured 在未配置外发邮件密钥时返回
	ErrEmailNotConfigured = errors.New("email delivery not configured")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const resendEndpoint = "https://api.resend.com/emails"

// ContactService 负责联系表单的校验与邮件外发。
// 邮件通过 Resend HTTP API 发送，缺少密钥时降级为明确的错误而非崩溃。
type ContactService struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
	endpoint  string
}

// NewContactService 构造 ContactService
func NewContactService(apiKey, fromEmail, toEmail string) *ContactService {
	return &ContactService{
		apiKey:    strings.TrimSpace(apiKey),
		fromEmail: strings.TrimSpace(fromEmail),
		toEmail:   strings.TrimSpace(toEmail),
		client:    &http.Client{Timeout: 10 * time.Second},
		endpoint:  resendEndpoint,
	}
}

// WithEndpoint 允许测试替换 Resend API 地址
func (s *ContactService) WithEndpoint(endpoint string) *ContactService {
	if strings.TrimSpace(endpoint) != "" {
		s.endpoint = endpoint
	}
	return s
}

// ContactMessage 描述一次联系表单提交
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Validate 校验联系表单字段
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrContactInvalidInput)
	}
	if strings.TrimSpace(m.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrContactInvalidInput)
	}
	if !emailPattern.MatchString(strings.TrimSpace(m.Email)) {
		return fmt.Errorf("%w: invalid email address", ErrContactInvalidInput)
	}
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrContactInvalidInput)
	}
	return nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send 校验并外发联系邮件
func (s *ContactService) Send(msg ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if s.apiKey == "" || s.toEmail == "" {
		return ErrEmailNotConfigured
	}

	name := strings.TrimSpace(msg.Name)
	subject := fmt.Sprintf("Portfolio contact from %s", name)
	htmlBody := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(strings.TrimSpace(msg.Email)),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br/>"),
	)

	body := resendRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		ReplyTo: strings.TrimSpace(msg.Email),
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal contact email: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}
