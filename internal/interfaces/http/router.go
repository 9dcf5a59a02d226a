package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/odisseia/erp-api/internal/application/analytics"
	"github.com/odisseia/erp-api/internal/application/auth"
	"github.com/odisseia/erp-api/internal/application/sales"
	"github.com/odisseia/erp-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *usecase.ProductUseCase
	SaleUC       *sales.UseCase
	ContractUC   *usecase.ContractUseCase
	RevenueUC    *usecase.RevenueUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	CommissionUC *usecase.CommissionUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/users/me", authHandler.Me)
	protected.Get("/users", RequireAdmin(), authHandler.ListUsers)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Patch("/:id/cancel", saleHandler.Cancel)

	// Contratos (protegido)
	contracts := protected.Group("/contratos")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/stats/count", contractHandler.CountActive)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Delete("/:id", contractHandler.Delete)

	// Receitas (protegido)
	revenues := protected.Group("/receitas")
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	revenues.Get("/stats/mes-atual", revenueHandler.SumCurrentMonth)
	revenues.Post("/", revenueHandler.Create)
	revenues.Get("/", revenueHandler.List)
	revenues.Get("/:id", revenueHandler.GetByID)
	revenues.Put("/:id", revenueHandler.Update)
	revenues.Delete("/:id", revenueHandler.Delete)

	// Despesas (protegido)
	expenses := protected.Group("/despesas")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/stats/mes-atual", expenseHandler.SumCurrentMonth)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Comissões (protegido)
	commissions := protected.Group("/comissoes")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/stats/pendentes", commissionHandler.SumPending)
	commissions.Post("/", commissionHandler.Create)
	commissions.Get("/", commissionHandler.List)
	commissions.Get("/:id", commissionHandler.GetByID)
	commissions.Put("/:id", commissionHandler.Update)
	commissions.Delete("/:id", commissionHandler.Delete)
	commissions.Put("/:id/pagar", commissionHandler.MarkAsPaid)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
