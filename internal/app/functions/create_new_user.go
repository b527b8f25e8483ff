package functions

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/email"
	"github.com/yigit/coursecraft/internal/pkg/events"
	"github.com/yigit/coursecraft/internal/pkg/logger"
)

// clerkUser is the subset of the identity provider's user payload we keep
type clerkUser struct {
	ID                    string              `json:"id"`
	PrimaryEmailAddressID string              `json:"primary_email_address_id"`
	EmailAddresses        []clerkEmailAddress `json:"email_addresses"`
	FirstName             string              `json:"first_name"`
	LastName              string              `json:"last_name"`
	ImageURL              string              `json:"image_url"`
}

type clerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// primaryEmail returns the primary address, falling back to the first one
func (u clerkUser) primaryEmail() string {
	for _, addr := range u.EmailAddresses {
		if u.PrimaryEmailAddressID != "" && addr.ID == u.PrimaryEmailAddressID {
			return addr.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

func (u clerkUser) toModel() *models.User {
	user := &models.User{
		ID:        u.ID,
		Email:     u.primaryEmail(),
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
	}
	if u.ImageURL != "" {
		img := u.ImageURL
		user.ImageURL = &img
	}
	return user
}

// CreateNewUser stores a newly signed up user and sends the welcome email.
// A failed email does not fail the run; the user is already saved.
func CreateNewUser(users UserSyncer, mailer email.EmailService) events.Function {
	return events.Function{
		ID:      CreateNewUserID,
		Name:    "Create new user",
		Trigger: events.Trigger{Event: UserCreatedEvent},
		Handler: func(ctx context.Context, evt events.Event) (interface{}, error) {
			var payload clerkUser
			if err := evt.Decode(&payload); err != nil {
				return nil, err
			}

			user, err := users.SyncUser(ctx, payload.toModel())
			if err != nil {
				if apperrors.Is(err, apperrors.ErrMissingFields) {
					return nil, err
				}
				return nil, fmt.Errorf("error saving user %s: %w", payload.ID, err)
			}

			emailSent := true
			name := strings.TrimSpace(user.FirstName + " " + user.LastName)
			if err := mailer.SendWelcomeEmail(ctx, user.Email, name); err != nil {
				emailSent = false
				logger.Warn().Err(err).Str("userID", user.ID).Msg("Failed to send welcome email")
			}

			return map[string]interface{}{
				"userId":    user.ID,
				"email":     user.Email,
				"emailSent": emailSent,
			}, nil
		},
	}
}
