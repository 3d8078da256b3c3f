package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/hagwonlab/academy-api/internal/database"
	"github.com/hagwonlab/academy-api/internal/models"
)

// openTestDB connects to the database named by MYSQL_TEST_DSN and applies the
// schema. The DSN needs multiStatements=true for the bootstrap schema. Tests
// that need a real database skip when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("ping test db: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, users *UserRepository, role models.Role) *models.User {
	t.Helper()
	email := fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
	user, err := users.Create(context.Background(), &models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestApproveIdempotent(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users, models.RoleTeacher)
	if user.Approved {
		t.Fatal("new user already approved")
	}

	for i := 0; i < 2; i++ {
		if err := users.Approve(ctx, user.ID); err != nil {
			t.Fatalf("approve (round %d): %v", i, err)
		}
	}

	reloaded, err := users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !reloaded.Approved {
		t.Fatal("user not approved after Approve")
	}
}

func TestAssignmentDedupe(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	assignments := NewAssignmentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, users, models.RoleStudent)
	botID := fmt.Sprintf("bot-%d", time.Now().UnixNano())

	first, err := assignments.Create(ctx, user.ID, botID)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	// The unique (user, bot) key must reject a second insert.
	if _, err := assignments.Create(ctx, user.ID, botID); err == nil {
		t.Fatal("duplicate assignment insert succeeded")
	}

	if err := assignments.SetActive(ctx, first.ID, false); err != nil {
		t.Fatalf("deactivate assignment: %v", err)
	}
	found, err := assignments.FindByUserAndBot(ctx, user.ID, botID)
	if err != nil {
		t.Fatalf("find assignment: %v", err)
	}
	if found == nil || found.Active {
		t.Fatalf("expected inactive assignment, got %+v", found)
	}

	active, err := assignments.ListByUser(ctx, user.ID, true)
	if err != nil {
		t.Fatalf("list active assignments: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated assignment still listed as active: %d rows", len(active))
	}
}

func TestChargeApproveOnlyOnce(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	points := NewPointRepository(db, users)
	ctx := context.Background()

	student := createTestUser(t, users, models.RoleStudent)
	admin := createTestUser(t, users, models.RoleAdmin)

	charge, err := points.Create(ctx, student.ID, 500)
	if err != nil {
		t.Fatalf("create charge: %v", err)
	}
	if charge.Status != models.ChargePending {
		t.Fatalf("new charge status = %s", charge.Status)
	}

	ok, err := points.Approve(ctx, charge.ID, admin.ID)
	if err != nil {
		t.Fatalf("approve charge: %v", err)
	}
	if !ok {
		t.Fatal("approve of pending charge reported not-pending")
	}

	// Second approval must refuse: the request is no longer pending.
	ok, err = points.Approve(ctx, charge.ID, admin.ID)
	if err != nil {
		t.Fatalf("re-approve charge: %v", err)
	}
	if ok {
		t.Fatal("charge approved twice")
	}

	reloaded, err := users.FindByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if reloaded.Points != student.Points+500 {
		t.Fatalf("points = %d, want %d", reloaded.Points, student.Points+500)
	}

	if ok, err := points.Reject(ctx, charge.ID, admin.ID); err != nil || ok {
		t.Fatalf("reject after approve: ok=%v err=%v", ok, err)
	}
}

func TestProductOrdering(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	ctx := context.Background()

	base := time.Now().UnixNano()
	mk := func(name string, featured bool, order int) {
		t.Helper()
		_, err := products.Create(ctx, &models.StoreProduct{
			Name:         fmt.Sprintf("%s-%d", name, base),
			Price:        1000,
			Active:       true,
			Featured:     featured,
			DisplayOrder: order,
		})
		if err != nil {
			t.Fatalf("create product %s: %v", name, err)
		}
	}
	mk("plain-late", false, 1)
	mk("featured", true, 5)
	mk("plain-early", false, 0)

	listed, err := products.List(ctx, true)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}

	var names []string
	for _, p := range listed {
		names = append(names, p.Name)
	}
	posFeatured, posEarly, posLate := -1, -1, -1
	for i, name := range names {
		switch name {
		case fmt.Sprintf("featured-%d", base):
			posFeatured = i
		case fmt.Sprintf("plain-early-%d", base):
			posEarly = i
		case fmt.Sprintf("plain-late-%d", base):
			posLate = i
		}
	}
	if posFeatured == -1 || posEarly == -1 || posLate == -1 {
		t.Fatalf("created products not listed: %v", names)
	}
	if posFeatured > posEarly || posFeatured > posLate {
		t.Fatalf("featured product listed after plain product: %v", names)
	}
	// Among non-featured products display_order breaks the tie.
	if posEarly > posLate {
		t.Fatalf("display_order 0 listed after display_order 1: %v", names)
	}
}

func TestProductActiveFilter(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	ctx := context.Background()

	name := fmt.Sprintf("retired-%d", time.Now().UnixNano())
	created, err := products.Create(ctx, &models.StoreProduct{Name: name, Price: 1000, Active: true})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	inactive := false
	if _, err := products.Update(ctx, created.ID, ProductUpdate{Active: &inactive}); err != nil {
		t.Fatalf("deactivate product: %v", err)
	}

	contains := func(list []models.StoreProduct) bool {
		for _, p := range list {
			if p.ID == created.ID {
				return true
			}
		}
		return false
	}

	activeOnly, err := products.List(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if contains(activeOnly) {
		t.Fatal("deactivated product listed with activeOnly")
	}

	all, err := products.List(ctx, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if !contains(all) {
		t.Fatal("deactivated product missing from unfiltered list")
	}
}
