package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"fbcal-backend/lib/localedate"
	"fbcal-backend/lib/timezone"
)

const asyncBirthdaysPath = "/async/birthdays/"

// Birthday is one contact's recurring birthday. Day and Month carry no
// year, Facebook does not expose one.
type Birthday struct {
	UID   string
	Name  string
	Day   int
	Month int
}

// birthdayCardRegex picks the profile link, localized tooltip, and
// display name out of each birthday card in the monthly listing markup.
var birthdayCardRegex = regexp.MustCompile(
	`(?s)class="_43q7".*?href="https://www\.facebook\.com/(.*?)".*?data-tooltip-content="(.*?)">.*?alt="(.*?)".*?/>`)

// birthdayCardHTML digs the card markup out of the async listing
// payload, expected shape: {"domops":[[_,_,_,{"__html":"..."}]]}
func birthdayCardHTML(payload string) (string, error) {
	var body struct {
		Domops []json.RawMessage `json:"domops"`
	}
	err := json.Unmarshal([]byte(stripPayloadPrefix(payload)), &body)
	if err != nil {
		return "", fmt.Errorf("birthday payload: %w", err)
	}
	if len(body.Domops) == 0 {
		return "", fmt.Errorf("birthday payload: missing domops")
	}

	var op []json.RawMessage
	err = json.Unmarshal(body.Domops[0], &op)
	if err != nil {
		return "", fmt.Errorf("birthday payload: %w", err)
	}
	if len(op) < 4 {
		return "", fmt.Errorf("birthday payload: domop too short")
	}

	var content struct {
		HTML string `json:"__html"`
	}
	err = json.Unmarshal(op[3], &content)
	if err != nil {
		return "", fmt.Errorf("birthday payload: %w", err)
	}
	return content.HTML, nil
}

// birthdayCard is a raw card before entity and date resolution.
// Tooltip and RawName keep their character references intact: the
// date layouts match against the raw text, and stripping the name out
// of the tooltip only works when both carry the same encoding.
type birthdayCard struct {
	Vanity  string
	Tooltip string
	RawName string
	Name    string
}

func parseBirthdayCards(markup string) []birthdayCard {
	var cards []birthdayCard
	for _, groups := range birthdayCardRegex.FindAllStringSubmatch(markup, -1) {
		cards = append(cards, birthdayCard{
			Vanity:  groups[1],
			Tooltip: groups[2],
			RawName: groups[3],
			Name:    html.UnescapeString(groups[3]),
		})
	}
	return cards
}

// FetchBirthdays walks a year of monthly listing windows and resolves
// every card into a deduplicated Birthday list, ordered by first
// appearance. Adjacent windows overlap near month boundaries, so the
// same contact can show up twice.
func (c *Client) FetchBirthdays(ctx context.Context) ([]Birthday, error) {
	ctx, span := tracer.Start(ctx, "client:FetchBirthdays")
	defer span.End()

	token, err := c.AsyncToken(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to get async token")
		return nil, err
	}
	locale, err := c.Locale(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to get account locale")
		return nil, err
	}

	now := timezone.Now()

	seen := map[string]bool{}
	var birthdays []Birthday
	for _, window := range timezone.MonthStarts(now, 12) {
		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"date":       strconv.FormatInt(window.Unix(), 10),
				"fb_dtsg_ag": token,
				"__a":        "1",
			}).
			Get(asyncBirthdaysPath)
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch birthday window")
			return nil, err
		}
		if res.StatusCode() != http.StatusOK {
			span.SetStatus(codes.Error, "birthday window unavailable")
			return nil, fmt.Errorf("birthday window status %d: %w", res.StatusCode(), ErrPageUnavailable)
		}

		markup, err := birthdayCardHTML(res.String())
		if err != nil {
			span.SetStatus(codes.Error, "failed to parse birthday window")
			return nil, err
		}

		for _, card := range parseBirthdayCards(markup) {
			uid, err := c.ResolveEntityID(ctx, card.Vanity)
			if err != nil {
				span.SetStatus(codes.Error, "failed to resolve entity id")
				return nil, err
			}
			if seen[uid] {
				continue
			}

			day, month, err := localedate.ResolveDayMonth(card.Tooltip, card.RawName, locale, now)
			if err != nil {
				span.SetStatus(codes.Error, "failed to resolve birthday date")
				return nil, fmt.Errorf("contact %q: %w", card.Name, err)
			}

			seen[uid] = true
			birthdays = append(birthdays, Birthday{
				UID:   uid,
				Name:  card.Name,
				Day:   day,
				Month: month,
			})
		}
	}

	span.SetAttributes(attribute.Int("birthday.count", len(birthdays)))
	if len(birthdays) == 0 {
		span.SetStatus(codes.Error, "no birthdays found")
		return nil, ErrNoData
	}
	return birthdays, nil
}
