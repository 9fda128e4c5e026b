package calsync

import "fmt"

// Apply merges in into s and validates the result.
func (s Settings) Apply(in SettingsInput) (Settings, error) {
	out := s
	if in.Direction != nil {
		out.Direction = *in.Direction
	}
	if in.EventTypes != nil {
		out.EventTypes = append([]string(nil), (*in.EventTypes)...)
	}
	if in.FrequencyMinutes != nil {
		out.FrequencyMinutes = *in.FrequencyMinutes
	}
	return out, out.Validate()
}

func (s Settings) Validate() error {
	if !s.Direction.Valid() {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidPayload, s.Direction)
	}
	if s.FrequencyMinutes < minFrequencyMinutes {
		return fmt.Errorf("%w: frequencyMinutes must be at least %d", ErrInvalidPayload, minFrequencyMinutes)
	}
	return nil
}

// Validate checks the credentials a provider needs.
func (in ConnectInput) Validate() error {
	if !in.Provider.Valid() {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidPayload, in.Provider)
	}
	switch in.Provider {
	case ProviderGoogle:
		if in.AccessToken == "" && in.RefreshToken == "" {
			return fmt.Errorf("%w: accessToken or refreshToken is required", ErrInvalidPayload)
		}
	case ProviderApple:
		if in.Account == "" || in.AccessToken == "" {
			return fmt.Errorf("%w: account and accessToken (app password) are required", ErrInvalidPayload)
		}
	}
	return nil
}
