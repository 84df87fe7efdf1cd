package mailer

import (
	"PortalPiloto/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client envia e-mails através de um gateway HTTP
type Client struct {
	http *resty.Client
	from string
	url  string
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewClient() *Client {
	var cfg config.MailConfig
	if config.Cfg != nil {
		cfg = config.Cfg.Mail
	}

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetBaseURL(cfg.GatewayURL).
		SetHeader("Authorization", "Bearer "+cfg.ApiKey)

	return &Client{
		http: client,
		from: cfg.From,
		url:  cfg.GatewayURL,
	}
}

// Send entrega um e-mail pelo gateway. O chamador decide se a falha é fatal.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if c.url == "" {
		return errors.New("mail gateway não configurado")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    c.from,
			To:      to,
			Subject: subject,
			Body:    body,
		}).
		Post("/v1/send")
	if err != nil {
		return errors.Wrap(err, "mailer: falha na requisição ao gateway")
	}
	if resp.IsError() {
		return fmt.Errorf("mailer: gateway respondeu %d", resp.StatusCode())
	}
	return nil
}
