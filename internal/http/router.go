package api

import (
	"log"
	stdhttp "net/http"

	intconfig "staffdesk/internal/config"
	h "staffdesk/internal/http/handlers"
	"staffdesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth(h.JWTSecret())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Users
		users := api.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", requireAuth, h.CreateUser)
		users.PUT("/:id", requireAuth, h.UpdateUser)
		users.DELETE("/:id", requireAuth, h.DeleteUser)

		// Assets
		assets := api.Group("/assets")
		assets.GET("", h.GetAssets)
		assets.GET("/:id", h.GetAssetByID)
		assets.POST("", requireAuth, h.CreateAsset)
		assets.PUT("/:id", requireAuth, h.UpdateAsset)
		assets.DELETE("/:id", requireAuth, h.DeleteAsset)
		assets.PUT("/:id/assign", requireAuth, h.AssignAsset)

		// Invoices
		invoices := api.Group("/invoices")
		invoices.GET("", h.GetInvoices)
		invoices.GET("/summary", h.GetInvoiceSummary)
		invoices.GET("/:id", h.GetInvoiceByID)
		invoices.POST("", requireAuth, h.CreateInvoice)
		invoices.PUT("/:id", requireAuth, h.UpdateInvoice)
		invoices.DELETE("/:id", requireAuth, h.DeleteInvoice)

		// Contractor payments
		payments := api.Group("/contractor-payments")
		payments.GET("", h.GetContractorPayments)
		payments.GET("/:id", h.GetContractorPaymentByID)
		payments.POST("", requireAuth, h.CreateContractorPayment)
		payments.PUT("/:id", requireAuth, h.UpdateContractorPayment)
		payments.DELETE("/:id", requireAuth, h.DeleteContractorPayment)
		payments.PUT("/:id/approve", requireAuth, h.ApproveContractorPayment)
		payments.PUT("/:id/mark-paid", requireAuth, h.MarkContractorPaymentPaid)
		payments.PUT("/:id/cancel", requireAuth, h.CancelContractorPayment)

		// Leave balances
		leave := api.Group("/leave-balances")
		leave.GET("", h.GetLeaveBalances)
		leave.GET("/:id", h.GetLeaveBalanceByID)
		leave.POST("/adjust", requireAuth, h.AdjustLeaveBalance)
		leave.POST("/initialize", requireAuth, h.InitializeLeaveBalances)
		leave.POST("/carry-forward", requireAuth, h.CarryForwardLeaveBalances)
		leave.DELETE("/:id", requireAuth, h.DeleteLeaveBalance)

		// Products
		products := api.Group("/products")
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", requireAuth, h.CreateProduct)
		products.PUT("/:id", requireAuth, h.UpdateProduct)
		products.DELETE("/:id", requireAuth, h.DeleteProduct)

		// Payslips
		payslips := api.Group("/payslips")
		payslips.GET("", h.GetPayslips)
		payslips.GET("/:id", h.GetPayslipByID)
		payslips.GET("/:id/pdf", h.GetPayslipPDF)
		payslips.POST("", requireAuth, h.CreatePayslip)
		payslips.PUT("/:id", requireAuth, h.UpdatePayslip)
		payslips.DELETE("/:id", requireAuth, h.DeletePayslip)
	}

	h.SetRouter(r)
	return r
}
