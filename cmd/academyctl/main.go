package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hagwonlab/academy-api/internal/config"
	"github.com/hagwonlab/academy-api/internal/database"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
)

// academyctl is the operator tool: account lookups and provisioning, orphan
// repair, session purges and a deployment smoke check.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "user":
		err = cmdUser(ctx, os.Args[2:])
	case "create-user":
		err = cmdCreateUser(ctx, os.Args[2:])
	case "assign-academy":
		err = cmdAssignAcademy(ctx, os.Args[2:])
	case "purge-sessions":
		err = cmdPurgeSessions(ctx, os.Args[2:])
	case "smoke":
		err = cmdSmoke(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "academyctl %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: academyctl <command> [flags]

commands:
  user            look up an account by email or id, print JSON
  create-user     create an account (approved immediately)
  assign-academy  attach orphaned student profiles to an academy
  purge-sessions  delete expired and revoked sessions
  smoke           probe a running server's public surface`)
}

func openDB() (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}
	return db, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user", flag.ExitOnError)
	email := fs.String("email", "", "look up by email")
	id := fs.Int64("id", 0, "look up by id")
	fs.Parse(args)

	if *email == "" && *id == 0 {
		return fmt.Errorf("-email or -id is required")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	users := repository.NewUserRepository(db)
	var user *models.User
	if *email != "" {
		user, err = users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	} else {
		user, err = users.FindByID(ctx, *id)
	}
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	out := map[string]any{"user": user}
	if user.Role == models.RoleStudent {
		student, err := repository.NewStudentRepository(db).GetByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if student != nil {
			out["student"] = student
		}
	}
	return printJSON(out)
}

func cmdCreateUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password (required)")
	name := fs.String("name", "", "display name (required)")
	role := fs.String("role", "STUDENT", "one of STUDENT, TEACHER, DIRECTOR, ADMIN, SUPER_ADMIN")
	academyID := fs.Int64("academy", 0, "academy id (0 for none)")
	fs.Parse(args)

	if *email == "" || *password == "" || *name == "" {
		return fmt.Errorf("-email, -password and -name are required")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	users := service.NewUserService(repository.NewUserRepository(db), repository.NewStudentRepository(db))
	input := service.CreateUserInput{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Role:     *role,
		Approved: true,
	}
	if *academyID > 0 {
		input.AcademyID = academyID
	}
	user, err := users.Create(ctx, input)
	if err != nil {
		return err
	}
	fmt.Printf("created user %d (%s, %s)\n", user.ID, user.Email, user.Role)
	return nil
}

func cmdAssignAcademy(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assign-academy", flag.ExitOnError)
	code := fs.String("academy-code", "", "target academy code (required)")
	studentID := fs.Int64("student-id", 0, "assign a single student")
	allOrphans := fs.Bool("all-orphans", false, "assign every orphaned student profile")
	dryRun := fs.Bool("dry-run", false, "list orphans without assigning")
	fs.Parse(args)

	if *code == "" {
		return fmt.Errorf("-academy-code is required")
	}
	if !*dryRun && *studentID == 0 && !*allOrphans {
		return fmt.Errorf("one of -student-id, -all-orphans or -dry-run is required")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	academy, err := repository.NewAcademyRepository(db).GetByCode(ctx, strings.ToUpper(strings.TrimSpace(*code)))
	if err != nil {
		return err
	}
	if academy == nil {
		return fmt.Errorf("academy %q not found", *code)
	}

	students := repository.NewStudentRepository(db)
	switch {
	case *dryRun:
		orphans, err := students.ListOrphans(ctx)
		if err != nil {
			return err
		}
		for _, s := range orphans {
			fmt.Printf("orphan student user=%d school=%s grade=%s\n", s.UserID, s.School, s.Grade)
		}
		fmt.Printf("%d orphaned student profiles\n", len(orphans))
	case *studentID > 0:
		if err := students.AssignAcademy(ctx, *studentID, academy.ID); err != nil {
			return err
		}
		fmt.Printf("assigned student %d to academy %q\n", *studentID, academy.Name)
	default:
		n, err := students.AssignAcademyToOrphans(ctx, academy.ID)
		if err != nil {
			return err
		}
		fmt.Printf("assigned %d student profiles to academy %q\n", n, academy.Name)
	}
	return nil
}

func cmdPurgeSessions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("purge-sessions", flag.ExitOnError)
	fs.Parse(args)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := repository.NewSessionRepository(db).PurgeExpired(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("purged %d sessions\n", n)
	return nil
}

func cmdSmoke(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("smoke", flag.ExitOnError)
	baseURL := fs.String("base-url", "http://localhost:8080", "server base URL")
	fs.Parse(args)

	base := strings.TrimRight(*baseURL, "/")

	get := func(path string) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
		if err != nil {
			return nil, err
		}
		return http.DefaultClient.Do(req)
	}

	resp, err := get("/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health returned %d", resp.StatusCode)
	}
	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decode health response: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}

	for _, path := range []string{"/api/pricing/plans", "/api/store/products"} {
		resp, err := get(path)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s returned %d", path, resp.StatusCode)
		}
	}

	fmt.Println("ok")
	return nil
}
