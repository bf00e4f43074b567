package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rodriguezalexp/little-lemon-api/configs"
	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/routes"
	"github.com/rodriguezalexp/little-lemon-api/utils"
)

var testCfg = &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

// setupRouter builds the real router against a fresh in-memory database. Each
// test gets its own named shared-cache db so state never leaks between tests.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, testCfg)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u := entity.User{Email: email, Password: string(hash), FirstName: "Test", LastName: "User", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func tokenFor(t *testing.T, u entity.User) string {
	t.Helper()
	token, err := utils.GenerateToken(u.ID, u.Role, testCfg.JWTSecret, testCfg.JWTTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price float64) entity.MenuItem {
	t.Helper()
	cat := entity.Category{Title: "Mains", Slug: "mains-" + title}
	if err := db.Where("slug = ?", cat.Slug).FirstOrCreate(&cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	item := entity.MenuItem{Title: title, Price: decimal.NewFromFloat(price), CategoryID: cat.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func addToCart(t *testing.T, r *gin.Engine, token string, menuItemID uint, qty int) {
	t.Helper()
	rec := doRequest(r, http.MethodPost, "/cart", token, gin.H{"menuItemId": menuItemID, "quantity": qty})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add to cart: status %d body %s", rec.Code, rec.Body.String())
	}
}
