// Package facebook drives an authenticated scraping session against
// the undocumented birthday endpoints: login handshake, async token
// and locale discovery, month-by-month birthday extraction and vanity
// name resolution. A Client is built per request and thrown away with
// it; it is not safe for concurrent use and must never be shared.
package facebook

import (
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"fbcal-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/facebook")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/74.0.3729.169 Safari/537.36"

type ClientOptions struct {
	// defaults to https://www.facebook.com
	BaseUrl string
	// defaults to https://m.facebook.com, profile page scraping goes
	// through here
	MobileBaseUrl string
}

type Client struct {
	http          *resty.Client
	baseUrl       *url.URL
	mobileBaseUrl string

	// memoized for the life of this client only: the async token is
	// bound to this session's cookies and the locale to this account,
	// caching either any wider leaks state across requests
	asyncToken string
	locale     string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = "https://www.facebook.com"
	}
	if opts.MobileBaseUrl == "" {
		opts.MobileBaseUrl = "https://m.facebook.com"
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	mobileUrl, err := url.Parse(opts.MobileBaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", defaultUserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(
		baseUrl.Hostname(),
		mobileUrl.Hostname(),
	))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/facebook/http")

	return &Client{
		http:          client,
		baseUrl:       baseUrl,
		mobileBaseUrl: strings.TrimSuffix(opts.MobileBaseUrl, "/"),
	}, nil
}

// async endpoints prefix their json with a guard line against direct
// execution by browsers, it has to go before the payload parses
func stripPayloadPrefix(payload string) string {
	return strings.TrimPrefix(payload, "for (;;);")
}
