// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/config"
	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/application/usecase/agenda"
	"github.com/salon-manager/backend/internal/application/usecase/appointment"
	"github.com/salon-manager/backend/internal/application/usecase/auth"
	"github.com/salon-manager/backend/internal/application/usecase/catalog"
	"github.com/salon-manager/backend/internal/application/usecase/client"
	"github.com/salon-manager/backend/internal/application/usecase/dashboard"
	"github.com/salon-manager/backend/internal/application/usecase/revenue"
	"github.com/salon-manager/backend/internal/application/usecase/sheet"
	"github.com/salon-manager/backend/internal/infra/server/router"
	"github.com/salon-manager/backend/internal/integration/adapters"
	"github.com/salon-manager/backend/internal/integration/entrypoint/controller"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The health controller is wired by the caller since it depends on the
// connection lifecycle, and redisClient may be nil when Redis is disabled.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	clock adapter.Clock,
	healthController *controller.HealthController,
) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	appointmentRepo := persistence.NewAppointmentRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	serviceRepo := persistence.NewServiceRepository(db)
	sheetRepo := persistence.NewSheetRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	getMeUseCase := auth.NewGetMeUseCase(userRepo)
	listUsersUseCase := auth.NewListUsersUseCase(userRepo)

	// Create appointment use cases
	listAppointmentsUseCase := appointment.NewListAppointmentsUseCase(appointmentRepo)
	createAppointmentUseCase := appointment.NewCreateAppointmentUseCase(appointmentRepo, serviceRepo)
	updateAppointmentUseCase := appointment.NewUpdateAppointmentUseCase(appointmentRepo)
	setStatusUseCase := appointment.NewSetAppointmentStatusUseCase(appointmentRepo, clock)
	deleteAppointmentUseCase := appointment.NewDeleteAppointmentUseCase(appointmentRepo)

	// Create agenda, dashboard and revenue use cases
	getAgendaUseCase := agenda.NewGetAgendaUseCase(appointmentRepo, clientRepo, clock)
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(dashboardRepo, clock)
	getStatsUseCase := revenue.NewGetStatsUseCase(appointmentRepo, clock)

	// Create client use cases
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create service catalog use cases
	createServiceUseCase := catalog.NewCreateServiceUseCase(serviceRepo)
	listServicesUseCase := catalog.NewListServicesUseCase(serviceRepo)
	updateServiceUseCase := catalog.NewUpdateServiceUseCase(serviceRepo)
	deleteServiceUseCase := catalog.NewDeleteServiceUseCase(serviceRepo)

	// Create technical sheet use cases
	createSheetUseCase := sheet.NewCreateSheetUseCase(sheetRepo, clientRepo, clock)
	listClientSheetsUseCase := sheet.NewListClientSheetsUseCase(sheetRepo, clientRepo)
	deleteSheetUseCase := sheet.NewDeleteSheetUseCase(sheetRepo)

	// Create controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		getMeUseCase,
		listUsersUseCase,
	)
	appointmentController := controller.NewAppointmentController(
		listAppointmentsUseCase,
		createAppointmentUseCase,
		updateAppointmentUseCase,
		setStatusUseCase,
		deleteAppointmentUseCase,
	)
	agendaController := controller.NewAgendaController(getAgendaUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	revenueController := controller.NewRevenueController(getStatsUseCase)
	clientController := controller.NewClientController(
		createClientUseCase,
		listClientsUseCase,
		deleteClientUseCase,
	)
	serviceController := controller.NewServiceController(
		createServiceUseCase,
		listServicesUseCase,
		updateServiceUseCase,
		deleteServiceUseCase,
	)
	sheetController := controller.NewSheetController(
		createSheetUseCase,
		listClientSheetsUseCase,
		deleteSheetUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		appointmentController,
		agendaController,
		dashboardController,
		revenueController,
		clientController,
		serviceController,
		sheetController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
