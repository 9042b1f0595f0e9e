package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tutorhub/client/internal/config"
	"github.com/tutorhub/client/internal/logging"
)

const usage = `usage: tutorhub <command> [arguments]

session
  login <username> <password>       sign in and persist the session
  logout                            sign out
  register <username> <email> <password> <role>
  whoami                            show the active identity and home screen

students
  tutors [flags]                    search the tutor catalog
  book <tutor-id> <message...>      request a session with a tutor
  bookings                          list your bookings
  review <booking-id> <rating> <comment...>
  favorite <tutor-id>               toggle a favorite tutor
  favorites                         list favorite tutors
  profile [flags]                   show or update your profile

tutors
  respond <booking-id> accept|reject
  complete <booking-id>             mark an accepted booking completed
  students                          list students you have taught
  subjects [add <name>]             list or add subjects`

// Run bootstraps the TutorHub client and dispatches the requested command.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	// Restore before dispatch so every command sees the persisted identity.
	if _, err := deps.Sessions.Restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "login":
		return cmdLogin(ctx, deps, args[1:])
	case "logout":
		return cmdLogout(ctx, deps)
	case "register":
		return cmdRegister(ctx, deps, args[1:])
	case "whoami":
		return cmdWhoami(deps)
	case "tutors":
		return cmdTutors(ctx, deps, args[1:])
	case "book":
		return cmdBook(ctx, deps, args[1:])
	case "bookings":
		return cmdBookings(ctx, deps)
	case "respond":
		return cmdRespond(ctx, deps, args[1:])
	case "complete":
		return cmdComplete(ctx, deps, args[1:])
	case "review":
		return cmdReview(ctx, deps, args[1:])
	case "favorite":
		return cmdFavorite(ctx, deps, args[1:])
	case "favorites":
		return cmdFavorites(ctx, deps)
	case "subjects":
		return cmdSubjects(ctx, deps, args[1:])
	case "students":
		return cmdStudents(ctx, deps)
	case "profile":
		return cmdProfile(ctx, deps, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
}
