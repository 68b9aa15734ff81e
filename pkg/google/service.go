package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	journaldomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Service wraps the Google OAuth flow and the Calendar/Gmail APIs the
// journal integrates with.
type Service struct {
	config *oauth2.Config
}

func NewService(clientID, clientSecret, redirectURI string) *Service {
	return &Service{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				calendar.CalendarScope,
				gmail.GmailSendScope,
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
			},
		},
	}
}

// AuthCodeURL returns the consent-screen URL. Offline access plus a
// forced consent prompt so Google hands out a refresh token.
func (s *Service) AuthCodeURL() string {
	return s.config.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.config.Exchange(ctx, code)
}

// UserInfo looks up the Google profile for a freshly exchanged token.
func (s *Service) UserInfo(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	srv, err := oauth2api.NewService(ctx, option.WithTokenSource(s.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("unable to create userinfo service: %v", err)
	}
	return srv.Userinfo.Get().Do()
}

// PrimaryCalendarTimeZone reads the timezone Google has on the user's
// primary calendar. Returns "" when Google reports none.
func (s *Service) PrimaryCalendarTimeZone(ctx context.Context, token *oauth2.Token) (string, error) {
	srv, err := calendar.NewService(ctx, option.WithTokenSource(s.config.TokenSource(ctx, token)))
	if err != nil {
		return "", fmt.Errorf("unable to create calendar service: %v", err)
	}
	entry, err := srv.CalendarList.Get("primary").Do()
	if err != nil {
		return "", err
	}
	return entry.TimeZone, nil
}

// notifyTokenSource wraps an oauth2 token source so a refreshed access
// token is persisted before the request that triggered it completes.
type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback authdomain.TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			logger.Sugar.Warnw("failed to persist refreshed token", "error", err)
		}
	}
	return t, nil
}

// client builds an authenticated HTTP client from stored credentials.
func (s *Service) client(ctx context.Context, creds authdomain.Credentials) *http.Client {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	}
	if creds.ExpiryMs > 0 {
		token.Expiry = time.UnixMilli(creds.ExpiryMs)
	} else if creds.RefreshToken != "" {
		// Unknown expiry: force a refresh up front rather than risk a 401.
		token.Expiry = time.Now()
	}

	wrapped := &notifyTokenSource{
		src:      s.config.TokenSource(ctx, token),
		current:  token,
		callback: creds.OnRefresh,
	}
	return oauth2.NewClient(ctx, wrapped)
}

// InsertEvent creates an all-day event and returns its Google id.
func (s *Service) InsertEvent(ctx context.Context, creds authdomain.Credentials, calendarID string, event *journaldomain.CalendarEvent) (string, error) {
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(s.client(ctx, creds)))
	if err != nil {
		return "", fmt.Errorf("unable to create calendar service: %v", err)
	}
	created, err := srv.Events.Insert(calendarID, toGoogleEvent(event)).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

// PatchEvent updates an existing event in place.
func (s *Service) PatchEvent(ctx context.Context, creds authdomain.Credentials, calendarID, eventID string, event *journaldomain.CalendarEvent) error {
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(s.client(ctx, creds)))
	if err != nil {
		return fmt.Errorf("unable to create calendar service: %v", err)
	}
	_, err = srv.Events.Patch(calendarID, eventID, toGoogleEvent(event)).Do()
	return err
}

func toGoogleEvent(event *journaldomain.CalendarEvent) *calendar.Event {
	return &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &calendar.EventDateTime{Date: event.StartDate},
		End:         &calendar.EventDateTime{Date: event.EndDate},
	}
}

// SendPlainText sends a plain-text mail through the user's own Gmail.
func (s *Service) SendPlainText(ctx context.Context, creds authdomain.Credentials, to, from, subject, body string) error {
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(s.client(ctx, creds)))
	if err != nil {
		return fmt.Errorf("unable to create gmail service: %v", err)
	}
	_, err = srv.Users.Messages.Send("me", &gmail.Message{
		Raw: buildRawMessage(to, from, subject, body),
	}).Do()
	return err
}

// buildRawMessage assembles an RFC 822 message and base64url-encodes it
// the way the Gmail send API expects.
func buildRawMessage(to, from, subject, body string) string {
	msg := fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s", to, from, subject, body)
	return base64.RawURLEncoding.EncodeToString([]byte(msg))
}
