package facebook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

const loginPath = "/login.php"

var datrTokenRegex = regexp.MustCompile(`"_js_datr","(.*?)"`)

// extractDatrToken pulls the anti-bot cookie value embedded in the
// login page markup, expected shape: "_js_datr","<value>"
func extractDatrToken(body string) (string, error) {
	groups := datrTokenRegex.FindStringSubmatch(body)
	if groups == nil {
		return "", ErrDatrTokenNotFound
	}
	return groups[1], nil
}

// Login performs the multi-step handshake. There is no positive
// confirmation: a response without a rejection or checkpoint marker is
// a successful login.
func (c *Client) Login(ctx context.Context, email, password string) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(loginPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login page")
		return err
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "login page unavailable")
		return fmt.Errorf("login page status %d: %w", res.StatusCode(), ErrPageUnavailable)
	}

	datr, err := extractDatrToken(res.String())
	if err != nil {
		span.SetStatus(codes.Error, "datr token missing")
		return err
	}

	// consent-wall regions only serve the real login form once the
	// value is presented back under both cookie names
	domain := strings.TrimPrefix(c.baseUrl.Hostname(), "www.")
	c.http.SetCookies([]*http.Cookie{
		{Name: "datr", Value: datr, Domain: domain, Path: "/"},
		{Name: "_js_datr", Value: datr, Domain: domain, Path: "/"},
	})

	res, err = c.http.R().
		SetContext(ctx).
		Get(loginPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to re-fetch login page")
		return err
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "login page unavailable")
		return fmt.Errorf("login page status %d: %w", res.StatusCode(), ErrPageUnavailable)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login page")
		return err
	}
	form := doc.Find("form#login_form")
	if form.Length() == 0 {
		span.SetStatus(codes.Error, ErrLoginFormMissing.Error())
		return ErrLoginFormMissing
	}

	// the hidden form fields are part of the handshake, carry them all
	fields := map[string]string{}
	form.Find("input").Each(func(_ int, input *goquery.Selection) {
		name := input.AttrOr("name", "")
		if name == "" {
			return
		}
		fields[name] = input.AttrOr("value", "")
	})
	fields["email"] = email
	fields["pass"] = password

	action, err := res.RawResponse.Request.URL.Parse(form.AttrOr("action", loginPath))
	if err != nil {
		return err
	}

	res, err = c.http.R().
		SetContext(ctx).
		SetFormData(fields).
		Post(action.String())
	if err != nil {
		span.SetStatus(codes.Error, "failed to submit login form")
		return err
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "login submission unavailable")
		return fmt.Errorf("login submit status %d: %w", res.StatusCode(), ErrPageUnavailable)
	}

	doc, err = goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login response")
		return err
	}
	if doc.Find(`link[rel="canonical"][href="https://www.facebook.com/login/"]`).Length() > 0 {
		span.SetStatus(codes.Error, ErrLoginRejected.Error())
		return ErrLoginRejected
	}
	if doc.Find("button#checkpointSubmitButton").Length() > 0 {
		span.SetStatus(codes.Error, ErrCheckpointRequired.Error())
		return ErrCheckpointRequired
	}

	return nil
}
