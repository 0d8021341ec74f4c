package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"go.opentelemetry.io/otel/codes"
)

const (
	birthdayEventPath  = "/events/birthdays/"
	localeSettingsPath = "/ajax/settings/language/account.php"
)

var asyncTokenRegex = regexp.MustCompile(`\{"token":".*?","async_get_token":"(.*?)"\}`)

// extractAsyncToken pulls the CSRF-style token out of a json fragment
// embedded in the birthday event page, expected shape:
// {"token":"...","async_get_token":"<value>"}
func extractAsyncToken(body string) (string, error) {
	groups := asyncTokenRegex.FindStringSubmatch(body)
	if groups == nil {
		return "", ErrTokenExtraction
	}
	return groups[1], nil
}

// AsyncToken fetches the authorization token every async endpoint
// expects, once per client.
func (c *Client) AsyncToken(ctx context.Context) (string, error) {
	if c.asyncToken != "" {
		return c.asyncToken, nil
	}

	ctx, span := tracer.Start(ctx, "client:AsyncToken")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(birthdayEventPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch birthday event page")
		return "", fmt.Errorf("%w: %v", ErrTokenExtraction, err)
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "birthday event page unavailable")
		return "", fmt.Errorf("event page status %d: %w", res.StatusCode(), ErrTokenExtraction)
	}

	token, err := extractAsyncToken(res.String())
	if err != nil {
		span.SetStatus(codes.Error, "async token missing")
		return "", err
	}

	c.asyncToken = token
	return token, nil
}

var localeFormatRegex = regexp.MustCompile(`^[a-z]{2}_[A-Z]{2}$`)

// Locale fetches the account's display locale, once per client. Every
// tooltip the listing endpoint returns is formatted under it.
func (c *Client) Locale(ctx context.Context) (string, error) {
	if c.locale != "" {
		return c.locale, nil
	}

	token, err := c.AsyncToken(ctx)
	if err != nil {
		return "", err
	}

	ctx, span := tracer.Start(ctx, "client:Locale")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fb_dtsg_ag": token,
			"__a":        "1",
		}).
		Get(localeSettingsPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch language settings")
		return "", err
	}
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "language settings unavailable")
		return "", fmt.Errorf("settings status %d: %w", res.StatusCode(), ErrPageUnavailable)
	}

	locale, err := currentLocale(res.String())
	if err != nil {
		span.SetStatus(codes.Error, "locale missing from settings payload")
		return "", err
	}
	if !localeFormatRegex.MatchString(locale) {
		span.SetStatus(codes.Error, "unexpected locale format")
		return "", fmt.Errorf("locale %q: %w", locale, ErrUnsupportedLocaleFormat)
	}

	c.locale = locale
	return locale, nil
}

// currentLocale digs the locale out of the settings payload, expected
// shape: {"jsmods":{"require":[[_,_,_,[_,{"currentLocale":"xx_XX"}]]]}}
func currentLocale(payload string) (string, error) {
	var body struct {
		Jsmods struct {
			Require []json.RawMessage `json:"require"`
		} `json:"jsmods"`
	}
	err := json.Unmarshal([]byte(stripPayloadPrefix(payload)), &body)
	if err != nil {
		return "", fmt.Errorf("settings payload: %w", err)
	}
	if len(body.Jsmods.Require) == 0 {
		return "", fmt.Errorf("settings payload: missing require block")
	}

	var call []json.RawMessage
	err = json.Unmarshal(body.Jsmods.Require[0], &call)
	if err != nil {
		return "", fmt.Errorf("settings payload: %w", err)
	}
	if len(call) < 4 {
		return "", fmt.Errorf("settings payload: require call too short")
	}

	var args []json.RawMessage
	err = json.Unmarshal(call[3], &args)
	if err != nil {
		return "", fmt.Errorf("settings payload: %w", err)
	}
	if len(args) < 2 {
		return "", fmt.Errorf("settings payload: require args too short")
	}

	var settings struct {
		CurrentLocale string `json:"currentLocale"`
	}
	err = json.Unmarshal(args[1], &settings)
	if err != nil {
		return "", fmt.Errorf("settings payload: %w", err)
	}
	if settings.CurrentLocale == "" {
		return "", fmt.Errorf("settings payload: currentLocale absent")
	}
	return settings.CurrentLocale, nil
}
