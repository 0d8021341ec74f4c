// Package birthdays exports a contact's upcoming birthdays as an ics
// calendar. Each call opens a fresh scraping session under the
// caller's credentials; nothing is retained between calls.
package birthdays

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"fbcal-backend/lib/scrapers/facebook"
	"fbcal-backend/lib/timezone"
)

var tracer = otel.Tracer("services/birthdays")

type Service struct {
	client facebook.ClientOptions
}

func NewService(client facebook.ClientOptions) Service {
	return Service{client: client}
}

// GetBirthdays logs in with the given credentials, scrapes the coming
// year of birthdays and returns them rendered as ics text.
func (s Service) GetBirthdays(ctx context.Context, email, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "GetBirthdays")
	defer span.End()

	client, err := facebook.NewClient(s.client)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	err = client.Login(ctx, email, password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	records, err := client.FetchBirthdays(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("birthday.count", len(records)))

	ics, err := EncodeCalendar(BuildCalendar(records, timezone.Now()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	slog.DebugContext(ctx, "exported birthday calendar", slog.Int("count", len(records)))
	return ics, nil
}
