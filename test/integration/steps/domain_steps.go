package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// registerDomainSteps registers data seeding and authentication steps.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^a user "([^"]*)" with email "([^"]*)", password "([^"]*)" and role "([^"]*)" exists$`, aUserExists)
	ctx.Step(`^I log in with email "([^"]*)" and password "([^"]*)"$`, iLogInWith)
	ctx.Step(`^I am logged in as an? "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^a client named "([^"]*)" with phone "([^"]*)" exists$`, aClientExists)
	ctx.Step(`^a catalog service "([^"]*)" priced (\d+) exists$`, aCatalogServiceExists)
	ctx.Step(`^an appointment on "([^"]*)" at "([^"]*)" for "([^"]*)" with service "([^"]*)" priced (\d+) and status "([^"]*)" exists$`, anAppointmentExists)
	ctx.Step(`^a technical sheet with formula "([^"]*)" exists for client "([^"]*)"$`, aTechnicalSheetExists)
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	now, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		return fmt.Errorf("invalid time '%s': %w", value, err)
	}
	tc.clock.Set(now)
	return nil
}

func aUserExists(ctx context.Context, name, email, password, role string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	// MinCost keeps password hashing fast in tests.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tc.db.DbConn.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	tc.ids["userId"] = user.ID.String()
	return nil
}

func iLogInWith(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := iSendARequestToWithBody(ctx, "POST", "/api/v1/auth/login", &godog.DocString{Content: body}); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("login failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}

	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	tc.ids["refreshToken"] = auth.RefreshToken
	return nil
}

// iAmLoggedInAs seeds a user with the given role and logs in as them.
func iAmLoggedInAs(ctx context.Context, role string) error {
	email := fmt.Sprintf("test-%s@salon.test", role)
	password := "password123"
	if err := aUserExists(ctx, "Test "+role, email, password, role); err != nil {
		return err
	}
	return iLogInWith(ctx, email, password)
}

func aClientExists(ctx context.Context, fullname, phone string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	now := time.Now().UTC()
	client := &model.ClientModel{
		ID:        uuid.New(),
		Fullname:  fullname,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tc.db.DbConn.Create(client).Error; err != nil {
		return fmt.Errorf("failed to seed client: %w", err)
	}

	tc.ids["clientId"] = client.ID.String()
	return nil
}

func aCatalogServiceExists(ctx context.Context, name string, price int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	now := time.Now().UTC()
	service := &model.ServiceModel{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.NewFromInt(int64(price)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tc.db.DbConn.Create(service).Error; err != nil {
		return fmt.Errorf("failed to seed service: %w", err)
	}

	tc.ids["serviceId"] = service.ID.String()
	return nil
}

func anAppointmentExists(ctx context.Context, date, timeOfDay, clientName, serviceName string, price int, status string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	now := time.Now().UTC()
	appointment := &model.AppointmentModel{
		ID:         uuid.New(),
		DateString: date,
		Time:       timeOfDay,
		ClientName: clientName,
		Service:    serviceName,
		Price:      decimal.NewFromInt(int64(price)),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == "completed" {
		completedAt := tc.clock.Now()
		appointment.CompletedAt = &completedAt
	}
	if err := tc.db.DbConn.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to seed appointment: %w", err)
	}

	tc.ids["appointmentId"] = appointment.ID.String()
	return nil
}

func aTechnicalSheetExists(ctx context.Context, formula, clientName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var client model.ClientModel
	if err := tc.db.DbConn.Where("fullname = ?", clientName).First(&client).Error; err != nil {
		return fmt.Errorf("client '%s' not found: %w", clientName, err)
	}

	now := time.Now().UTC()
	sheet := &model.TechnicalSheetModel{
		ID:         uuid.New(),
		ClientID:   client.ID,
		DateString: tc.clock.Now().Format("2006-01-02"),
		Formula:    formula,
		Price:      decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tc.db.DbConn.Create(sheet).Error; err != nil {
		return fmt.Errorf("failed to seed technical sheet: %w", err)
	}

	tc.ids["sheetId"] = sheet.ID.String()
	return nil
}
