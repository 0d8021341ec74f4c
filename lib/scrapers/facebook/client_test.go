package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fakeAsyncToken = "AQfaketoken-123"
	rightPassword  = "rightpass"
	// triggers the checkpoint page instead of a normal login response
	checkpointPassword = "checkpointpass"
)

type fakeCard struct {
	Vanity  string
	Tooltip string
	Alt     string
}

func birthdayCardMarkup(cards ...fakeCard) string {
	var b strings.Builder
	for _, card := range cards {
		fmt.Fprintf(&b,
			`<div class="_43q7"><a href="https://www.facebook.com/%s" data-tooltip-content="%s"><img src="p.jpg" alt="%s" /></a></div>`,
			card.Vanity, card.Tooltip, card.Alt)
	}
	return b.String()
}

// fakeFacebook serves just enough of the scraped surface for the
// client to complete a full session.
type fakeFacebook struct {
	locale       string
	cards        []fakeCard
	composer     []composerEntry
	profilePages map[string]string
}

func asyncPayload(t *testing.T, v any) string {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return "for (;;);" + string(body)
}

func (f *fakeFacebook) start(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /login.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><script>"_js_datr","fakedatr123","expires"</script></head>`+
			`<body><form id="login_form" action="/login/submit" method="post">`+
			`<input type="hidden" name="lsd" value="AVqLsd"/>`+
			`<input type="hidden" name="jazoest" value="2958"/>`+
			`<input type="text" name="email"/><input type="password" name="pass"/>`+
			`</form></body></html>`)
	})
	mux.HandleFunc("POST /login/submit", func(w http.ResponseWriter, r *http.Request) {
		// the hidden fields must come back with the credentials
		if r.FormValue("lsd") != "AVqLsd" || r.FormValue("jazoest") != "2958" {
			http.Error(w, "missing handshake fields", http.StatusBadRequest)
			return
		}
		switch r.FormValue("pass") {
		case rightPassword:
			fmt.Fprint(w, `<html><body>feed</body></html>`)
		case checkpointPassword:
			fmt.Fprint(w, `<html><body><button id="checkpointSubmitButton">Continue</button></body></html>`)
		default:
			fmt.Fprint(w, `<html><head><link rel="canonical" href="https://www.facebook.com/login/"/></head><body></body></html>`)
		}
	})
	mux.HandleFunc("GET /events/birthdays/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><script>{"token":"1:0","async_get_token":"%s"};</script></html>`, fakeAsyncToken)
	})
	mux.HandleFunc("GET /ajax/settings/language/account.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fb_dtsg_ag") != fakeAsyncToken {
			http.Error(w, "bad token", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, asyncPayload(t, map[string]any{
			"jsmods": map[string]any{
				"require": []any{
					[]any{nil, nil, nil, []any{nil, map[string]string{"currentLocale": f.locale}}},
				},
			},
		}))
	})
	mux.HandleFunc("GET /async/birthdays/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fb_dtsg_ag") != fakeAsyncToken {
			http.Error(w, "bad token", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, asyncPayload(t, map[string]any{
			"domops": []any{
				[]any{"replace", "#contents", false, map[string]string{"__html": birthdayCardMarkup(f.cards...)}},
			},
		}))
	})
	mux.HandleFunc("GET /ajax/mercury/composer_query.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fb_dtsg_ag") != fakeAsyncToken {
			http.Error(w, "bad token", http.StatusForbidden)
			return
		}
		entries := f.composer
		if entries == nil {
			entries = []composerEntry{}
		}
		fmt.Fprint(w, asyncPayload(t, map[string]any{
			"payload": map[string]any{"entries": entries},
		}))
	})
	mux.HandleFunc("GET /{vanity}", func(w http.ResponseWriter, r *http.Request) {
		page, ok := f.profilePages[r.PathValue("vanity")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func (f *fakeFacebook) client(t *testing.T) *Client {
	t.Helper()
	server := f.start(t)
	client, err := NewClient(ClientOptions{
		BaseUrl:       server.URL,
		MobileBaseUrl: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestLoginAndFetchBirthdays(t *testing.T) {
	fake := &fakeFacebook{
		locale: "en_US",
		cards: []fakeCard{
			{Vanity: "profile.php?id=1001", Tooltip: "Alice Example (03/15)", Alt: "Alice Example"},
			{Vanity: "bob.vanity", Tooltip: "Bob O&#039;Neil (10/09)", Alt: "Bob O&#039;Neil"},
		},
		composer: []composerEntry{
			{UID: "5005", Alias: "bob.vanity", VerticalType: "PAGE", RenderType: "page"},
			{UID: "2002", Alias: "bob.vanity", VerticalType: "USER", RenderType: "friend"},
		},
	}
	client := fake.client(t)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, "user@example.com", rightPassword))

	// the same cards come back in every monthly window, each contact
	// must still appear exactly once
	birthdays, err := client.FetchBirthdays(ctx)
	require.NoError(t, err)
	require.Equal(t, []Birthday{
		{UID: "1001", Name: "Alice Example", Day: 15, Month: 3},
		{UID: "2002", Name: "Bob O'Neil", Day: 9, Month: 10},
	}, birthdays)
}

func TestLoginRejected(t *testing.T) {
	fake := &fakeFacebook{locale: "en_US"}
	client := fake.client(t)
	err := client.Login(context.Background(), "user@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrLoginRejected)
}

func TestLoginCheckpoint(t *testing.T) {
	fake := &fakeFacebook{locale: "en_US"}
	client := fake.client(t)
	err := client.Login(context.Background(), "user@example.com", checkpointPassword)
	require.ErrorIs(t, err, ErrCheckpointRequired)
}

func TestFetchBirthdaysNoData(t *testing.T) {
	fake := &fakeFacebook{locale: "en_US"}
	client := fake.client(t)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, "user@example.com", rightPassword))

	_, err := client.FetchBirthdays(ctx)
	require.ErrorIs(t, err, ErrNoData)
}

func TestResolveEntityIDComposerRenderType(t *testing.T) {
	// a friend render type identifies a person even when the vertical
	// type claims otherwise, no profile page scrape needed
	fake := &fakeFacebook{
		locale: "en_US",
		composer: []composerEntry{
			{UID: "7007", Alias: "dana.vanity", VerticalType: "PAGE", RenderType: "friend"},
		},
	}
	client := fake.client(t)

	id, err := client.ResolveEntityID(context.Background(), "dana.vanity")
	require.NoError(t, err)
	require.Equal(t, "7007", id)
}

func TestResolveEntityIDProfileFallback(t *testing.T) {
	fake := &fakeFacebook{
		locale: "en_US",
		profilePages: map[string]string{
			"carol.vanity": `<html><script>entity_id:3003,ef_page:null</script></html>`,
		},
	}
	client := fake.client(t)

	// nothing usable from the typeahead, falls back to the profile page
	id, err := client.ResolveEntityID(context.Background(), "carol.vanity")
	require.NoError(t, err)
	require.Equal(t, "3003", id)
}

func TestAsyncTokenMemoized(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/events/birthdays/" {
			hits++
		}
		fmt.Fprintf(w, `<html><script>{"token":"1:0","async_get_token":"%s"};</script></html>`, fakeAsyncToken)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL, MobileBaseUrl: server.URL})
	require.NoError(t, err)

	ctx := context.Background()
	for range 3 {
		token, err := client.AsyncToken(ctx)
		require.NoError(t, err)
		require.Equal(t, fakeAsyncToken, token)
	}
	require.Equal(t, 1, hits)
}
