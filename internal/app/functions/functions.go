// Package functions declares the event functions served at the webhook endpoint.
package functions

import (
	"context"
	"time"

	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/email"
	"github.com/yigit/coursecraft/internal/pkg/events"
)

// Function ids and the events they subscribe to
const (
	HelloWorldID       = "hello-world"
	HelloWorldEvent    = "test/hello.world"
	CreateNewUserID    = "create-new-user"
	UserCreatedEvent   = "clerk/user.created"
	CleanupEventRunsID = "cleanup-event-runs"
	CleanupSchedule    = "@daily"
)

// UserSyncer mirrors identity provider users into the users table
type UserSyncer interface {
	SyncUser(ctx context.Context, user *models.User) (*models.User, error)
}

// RunPruner deletes old function runs
type RunPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Deps are the collaborators of the registered functions
type Deps struct {
	Users     UserSyncer
	Mailer    email.EmailService
	Runs      RunPruner
	Retention time.Duration
}

// All returns every function in registration order
func All(deps Deps) []events.Function {
	return []events.Function{
		HelloWorld(),
		CreateNewUser(deps.Users, deps.Mailer),
		CleanupEventRuns(deps.Runs, deps.Retention, time.Now),
	}
}
