package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tutorhub/client/internal/api"
	"github.com/tutorhub/client/internal/catalog"
	"github.com/tutorhub/client/internal/models"
	"github.com/tutorhub/client/internal/routing"
)

var errSignedOut = errors.New("not signed in, run: tutorhub login <username> <password>")

func requireSession(deps *Dependencies) (*models.Session, error) {
	sess := deps.Sessions.Current()
	if sess == nil {
		return nil, errSignedOut
	}
	return sess, nil
}

func requireRole(deps *Dependencies, role models.Role) (*models.Session, error) {
	sess, err := requireSession(deps)
	if err != nil {
		return nil, err
	}
	if sess.User.Role != role {
		return nil, fmt.Errorf("this command is only available to %ss", role)
	}
	return sess, nil
}

func cmdLogin(ctx context.Context, deps *Dependencies, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: tutorhub login <username> <password>")
	}

	sess, err := deps.Sessions.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s (%s)\n", sess.User.Username, sess.User.Role)
	fmt.Printf("home screen: %s\n", routing.Route(sess))
	return nil
}

func cmdLogout(ctx context.Context, deps *Dependencies) error {
	deps.Sessions.Logout(ctx)
	fmt.Println("signed out")
	return nil
}

func cmdRegister(ctx context.Context, deps *Dependencies, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: tutorhub register <username> <email> <password> <role>")
	}

	role := models.Role(args[3])
	if role != models.RoleStudent && role != models.RoleTutor {
		return fmt.Errorf("role must be %q or %q", models.RoleStudent, models.RoleTutor)
	}

	sess, err := deps.API.Register(ctx, api.RegisterRequest{
		Username: args[0],
		Email:    args[1],
		Password: args[2],
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered %s (%s), now sign in with: tutorhub login %s <password>\n",
		sess.User.Username, sess.User.Role, sess.User.Username)
	return nil
}

func cmdWhoami(deps *Dependencies) error {
	sess := deps.Sessions.Current()
	fmt.Printf("home screen: %s\n", routing.Route(sess))
	if sess == nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("username: %s\nemail: %s\nrole: %s\n", sess.User.Username, sess.User.Email, sess.User.Role)
	return nil
}

func cmdTutors(ctx context.Context, deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("tutors", flag.ContinueOnError)
	text := fs.String("text", "", "match tutor name or subject")
	subject := fs.String("subject", "", "exact subject name")
	minFee := fs.Float64("min-fee", 0, "minimum fee")
	maxFee := fs.Float64("max-fee", 0, "maximum fee")
	minRating := fs.Float64("min-rating", 0, "minimum average rating")
	online := fs.Bool("online", false, "online tutors only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec := catalog.FilterSpec{
		Text:       *text,
		Subject:    *subject,
		MinRating:  *minRating,
		OnlineOnly: *online,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-fee":
			spec.MinFee = minFee
		case "max-fee":
			spec.MaxFee = maxFee
		}
	})

	tutors, err := deps.Catalog.Tutors(ctx)
	if err != nil {
		return err
	}

	matched := catalog.Filter(tutors, spec)
	if len(matched) == 0 {
		fmt.Println("no tutors match")
		if spec.Subject != "" {
			subjects, err := deps.Profiles.Subjects(ctx)
			if err == nil {
				if suggestion, ok := catalog.SuggestSubject(spec.Subject, subjects); ok {
					fmt.Printf("did you mean %q?\n", suggestion)
				}
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUBJECTS\tFEE\tRATING\tONLINE\tLOCATION")
	for _, t := range matched {
		names := make([]string, 0, len(t.Subjects))
		for _, s := range t.Subjects {
			names = append(names, s.Name)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\t%t\t%s\n",
			t.ID, t.Name, strings.Join(names, ","), float64(t.Fee), t.AverageRating, t.IsOnline, t.Location)
	}
	return w.Flush()
}

func cmdBook(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireRole(deps, models.RoleStudent)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: tutorhub book <tutor-id> <message...>")
	}

	tutorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tutor id %q", args[0])
	}

	tutor, err := deps.API.TutorByID(ctx, tutorID)
	if err != nil {
		return err
	}

	controller := deps.Bookings(sess.User.Role)
	booked, err := controller.CreateBooking(ctx, tutor, models.Subject{}, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Printf("booking %d sent to %s (%s), status: %s\n", booked.ID, tutor.Name, booked.SubjectName, booked.Status)
	return nil
}

func cmdBookings(ctx context.Context, deps *Dependencies) error {
	sess, err := requireSession(deps)
	if err != nil {
		return err
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}

	bookings := controller.Bookings()
	if len(bookings) == 0 {
		fmt.Println("no bookings yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWITH\tSUBJECT\tSTATUS\tREVIEWED\tMESSAGE")
	for _, b := range bookings {
		with := b.TutorName
		if sess.User.Role == models.RoleTutor {
			with = b.StudentName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n", b.ID, with, b.SubjectName, b.Status, b.Reviewed, b.Message)
	}
	return w.Flush()
}

func cmdRespond(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireRole(deps, models.RoleTutor)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: tutorhub respond <booking-id> accept|reject")
	}

	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[0])
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}
	if err := controller.RespondToBooking(ctx, bookingID, models.BookingDecision(args[1])); err != nil {
		return err
	}

	fmt.Printf("booking %d %sed\n", bookingID, args[1])
	return nil
}

func cmdComplete(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireRole(deps, models.RoleTutor)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: tutorhub complete <booking-id>")
	}

	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[0])
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}
	if err := controller.CompleteBooking(ctx, bookingID); err != nil {
		return err
	}

	fmt.Printf("booking %d completed\n", bookingID)
	return nil
}

func cmdReview(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireRole(deps, models.RoleStudent)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: tutorhub review <booking-id> <rating> [comment...]")
	}

	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[0])
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid rating %q", args[1])
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}
	if err := controller.SubmitReview(ctx, bookingID, rating, strings.Join(args[2:], " ")); err != nil {
		return err
	}

	fmt.Println("review submitted")
	return nil
}

func cmdFavorite(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireRole(deps, models.RoleStudent)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: tutorhub favorite <tutor-id>")
	}

	tutorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tutor id %q", args[0])
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.ToggleFavorite(ctx, tutorID); err != nil {
		return err
	}

	if controller.IsFavorite(tutorID) {
		fmt.Printf("tutor %d added to favorites\n", tutorID)
	} else {
		fmt.Printf("tutor %d removed from favorites\n", tutorID)
	}
	return nil
}

func cmdFavorites(ctx context.Context, deps *Dependencies) error {
	sess, err := requireRole(deps, models.RoleStudent)
	if err != nil {
		return err
	}

	controller := deps.Bookings(sess.User.Role)
	if err := controller.Refresh(ctx); err != nil {
		return err
	}

	favorites := controller.Favorites()
	if len(favorites) == 0 {
		fmt.Println("no favorite tutors yet")
		return nil
	}
	for _, t := range favorites {
		fmt.Printf("%d\t%s\n", t.ID, t.Name)
	}
	return nil
}

func cmdSubjects(ctx context.Context, deps *Dependencies, args []string) error {
	if _, err := requireSession(deps); err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "add" || len(args) < 2 {
			return errors.New("usage: tutorhub subjects [add <name>]")
		}
		subject, err := deps.Profiles.AddSubject(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("added subject %d: %s\n", subject.ID, subject.Name)
		return nil
	}

	subjects, err := deps.Profiles.Subjects(ctx)
	if err != nil {
		return err
	}
	for _, s := range subjects {
		fmt.Printf("%d\t%s\n", s.ID, s.Name)
	}
	return nil
}

func cmdStudents(ctx context.Context, deps *Dependencies) error {
	if _, err := requireRole(deps, models.RoleTutor); err != nil {
		return err
	}

	students, err := deps.Profiles.Students(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Println("no students yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSESSIONS")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.ID, s.Username, s.Email, s.TotalSessions)
	}
	return w.Flush()
}

func cmdProfile(ctx context.Context, deps *Dependencies, args []string) error {
	sess, err := requireSession(deps)
	if err != nil {
		return err
	}

	if sess.User.Role == models.RoleTutor {
		return tutorProfileCmd(ctx, deps, args)
	}
	return studentProfileCmd(ctx, deps, args)
}

func studentProfileCmd(ctx context.Context, deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	location := fs.String("location", "", "preferred location")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current, err := deps.Profiles.StudentProfile(ctx)
	if err != nil {
		return err
	}

	changed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "location" {
			current.PreferredLocation = *location
			changed = true
		}
	})
	if changed {
		if err := deps.Profiles.SaveStudentProfile(ctx, current); err != nil {
			return err
		}
		fmt.Println("profile updated")
	}

	fmt.Printf("preferred location: %s\n", current.PreferredLocation)
	return nil
}

func tutorProfileCmd(ctx context.Context, deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	bio := fs.String("bio", "", "profile bio")
	fee := fs.Float64("fee", 0, "hourly fee")
	location := fs.String("location", "", "teaching location")
	online := fs.Bool("online", false, "available for online sessions")
	years := fs.Int("years", 0, "years of experience")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current, hasProfile, err := deps.Profiles.TutorProfile(ctx)
	if err != nil {
		return err
	}

	update := api.TutorProfileUpdate{
		Bio:             current.Bio,
		Fee:             current.Fee,
		Location:        current.Location,
		IsOnline:        current.IsOnline,
		ExperienceYears: current.ExperienceYears,
	}
	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "bio":
			update.Bio = *bio
		case "fee":
			update.Fee = models.Money(*fee)
		case "location":
			update.Location = *location
		case "online":
			update.IsOnline = *online
		case "years":
			update.ExperienceYears = *years
		}
	})

	if changed {
		saved, err := deps.Profiles.SaveTutorProfile(ctx, update)
		if err != nil {
			return err
		}
		current = saved
		fmt.Println("profile saved")
	} else if !hasProfile {
		fmt.Println("no tutor profile yet, publish one with: tutorhub profile -bio ... -fee ...")
		return nil
	}

	fmt.Printf("bio: %s\nfee: %.2f\nlocation: %s\nonline: %t\nexperience: %d years\nrating: %.1f\n",
		current.Bio, float64(current.Fee), current.Location, current.IsOnline,
		current.ExperienceYears, current.AverageRating)
	return nil
}
