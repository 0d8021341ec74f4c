package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

const composerQueryPath = "/ajax/mercury/composer_query.php"

type composerEntry struct {
	UID          json.Number `json:"uid"`
	Alias        string      `json:"alias"`
	VerticalType string      `json:"vertical_type"`
	RenderType   string      `json:"render_type"`
}

// ResolveEntityID turns a profile link suffix into the numeric user
// id. Numeric profiles carry it in the link itself; vanity names go
// through the composer typeahead, then the mobile profile page.
func (c *Client) ResolveEntityID(ctx context.Context, vanity string) (string, error) {
	if id, ok := strings.CutPrefix(vanity, "profile.php?id="); ok {
		return id, nil
	}

	ctx, span := tracer.Start(ctx, "client:ResolveEntityID")
	defer span.End()

	// Typeahead misses (privacy settings, non-friend cards) fall
	// through to the profile page scrape. An entry counts as a person
	// when either the vertical says so or the render type does.
	entries, err := c.composerQueryEntries(ctx, vanity)
	if err == nil {
		for _, entry := range entries {
			person := entry.VerticalType == "USER" ||
				entry.RenderType == "friend" ||
				entry.RenderType == "non_friend"
			if !person {
				continue
			}
			if entry.Alias == vanity && entry.UID.String() != "" {
				return entry.UID.String(), nil
			}
		}
	}

	id, err := c.entityIDFromProfilePage(ctx, vanity)
	if err != nil {
		span.SetStatus(codes.Error, "entity id not found")
		return "", fmt.Errorf("vanity %q: %w", vanity, err)
	}
	return id, nil
}

func (c *Client) composerQueryEntries(ctx context.Context, query string) ([]composerEntry, error) {
	token, err := c.AsyncToken(ctx)
	if err != nil {
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fb_dtsg_ag": token,
			"__a":        "1",
			"value":      query,
		}).
		Get(composerQueryPath)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("composer query status %d: %w", res.StatusCode(), ErrPageUnavailable)
	}

	var body struct {
		Payload struct {
			Entries []composerEntry `json:"entries"`
		} `json:"payload"`
	}
	err = json.Unmarshal([]byte(stripPayloadPrefix(res.String())), &body)
	if err != nil {
		return nil, fmt.Errorf("composer payload: %w", err)
	}
	return body.Payload.Entries, nil
}

var entityIDRegex = regexp.MustCompile(`entity_id:(\d+),ef_page:`)

func (c *Client) entityIDFromProfilePage(ctx context.Context, vanity string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(c.mobileBaseUrl + "/" + vanity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntityResolution, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("profile page status %d: %w", res.StatusCode(), ErrEntityResolution)
	}

	groups := entityIDRegex.FindStringSubmatch(res.String())
	if groups == nil {
		return "", ErrEntityResolution
	}
	return groups[1], nil
}
