// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access for a family member
// and print the body for POST /api/v1/sync.
//
// Usage:
//   go run scripts/gcal-auth/main.go                          # GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET from env or .env
//   go run scripts/gcal-auth/main.go google-credentials.json  # OAuth Desktop App credentials file

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"familybridge/pkg/gcalendar"
)

func main() {
	config, err := oauthConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Offline access + forced consent so Google always returns a refresh token.
	authURL := config.AuthCodeURL("familybridge", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with the Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if tok.RefreshToken == "" {
		log.Println("Warning: no refresh token returned, the connection stops syncing once the access token expires")
	}

	body := map[string]any{
		"provider":     "google",
		"accessToken":  tok.AccessToken,
		"refreshToken": tok.RefreshToken,
		"calendarId":   "primary",
	}
	if !tok.Expiry.IsZero() {
		body["tokenExpiry"] = tok.Expiry
	}

	fmt.Println()
	fmt.Println("STEP 3: Send this body to POST /api/v1/sync with the member's bearer token:")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		log.Fatalf("Failed to encode body: %v", err)
	}
}

func oauthConfig() (*oauth2.Config, error) {
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file %q: %w", os.Args[1], err)
		}
		config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials: %w\nmake sure %q is an OAuth Desktop App credentials file", err, os.Args[1])
		}
		return config, nil
	}

	_ = godotenv.Load()
	id, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET")
	if id == "" || secret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set, or pass a credentials file")
	}
	config := gcalendar.OAuthConfig(id, secret)
	config.RedirectURL = "http://localhost"
	return config, nil
}
