// Package customer exposes the customer-facing endpoints: onboarding, login
// pass-through, payments and the dashboard.
package customer

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/middleware"
	accountsvc "github.com/kobopay/accountsvc/pkg/service/account"
	authsvc "github.com/kobopay/accountsvc/pkg/service/auth"
	"github.com/kobopay/accountsvc/webapi/common"
)

// Routes registers HTTP routes for customer-related operations.
//
// Routes:
//   - POST /api/v1/customer/onboard                     : Onboard a new customer.
//   - POST /api/v1/customer/auth/login                  : Forward login to the auth service.
//   - GET  /api/v1/customer/payment-history/:customerId : List the customer's payments.
//   - POST /api/v1/customer/make-payment                : Forward a payment request.
//   - GET  /api/v1/customer/dashboard/:customerId       : Customer dashboard view.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, claims *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/api/v1/customer/onboard", protected, Onboard(accountSvc))
	app.Post("/api/v1/customer/auth/login", Login(accountSvc))
	app.Get("/api/v1/customer/payment-history/:customerId", protected, PaymentHistory(accountSvc))
	app.Post("/api/v1/customer/make-payment", protected, MakePayment(accountSvc))
	app.Get("/api/v1/customer/dashboard/:customerId", protected, Dashboard(accountSvc, claims))
}

// callerSubject reads the authenticated subject from the validated token the
// JWT middleware stored in locals. Empty when the claim is unreadable.
func callerSubject(c *fiber.Ctx, claims *authsvc.Service) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	sub, err := claims.Subject(token)
	if err != nil {
		return ""
	}
	return sub
}

// Onboard returns a Fiber handler for customer onboarding.
// @Summary Onboard a new customer
// @Description Creates the customer and a zero-balance account. Requires a BVN or NIN identity proof.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body dto.OnboardCustomerRequest true "Customer details"
// @Success 201 {object} common.Response "Customer onboarded"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /api/v1/customer/onboard [post]
// @Security Bearer
func Onboard(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.OnboardCustomerRequest](c)
		if input == nil {
			return err // error response already written
		}
		resp, err := accountSvc.Onboard(c.Context(), input)
		if err != nil {
			log.Errorf("Failed to onboard customer: %v", err)
			if errors.Is(err, accountsvc.ErrIdentityProofRequired) {
				return common.ProblemDetailsJSON(c, "Identity proof required", err, fiber.StatusBadRequest)
			}
			return common.ProblemDetailsJSON(c, "Failed to onboard customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Customer onboarded", resp)
	}
}

// Login returns a Fiber handler forwarding credentials to the auth service.
// @Summary Authenticate a customer
// @Description Forwards login credentials to the external auth service and returns its response.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body dto.AuthLoginRequest true "Login credentials"
// @Success 200 {object} common.Response "Login response"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Router /api/v1/customer/auth/login [post]
func Login(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.AuthLoginRequest](c)
		if input == nil {
			return err // error response already written
		}
		resp, err := accountSvc.Login(c.Context(), input)
		if err != nil {
			log.Errorf("Login failed: %v", err)
			return common.ProblemDetailsJSON(c, "Login failed", err, fiber.StatusBadGateway)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", resp)
	}
}

// PaymentHistory returns a Fiber handler listing the customer's payments.
// @Summary Get payment history
// @Description Retrieves the customer's payment transactions from the payment service.
// @Tags customers
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} common.Response "Payment history"
// @Failure 400 {object} common.ProblemDetails "Invalid customer ID"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /api/v1/customer/payment-history/{customerId} [get]
// @Security Bearer
func PaymentHistory(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, err := uuid.Parse(c.Params("customerId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err,
				"Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		history, err := accountSvc.PaymentHistory(c.Context(), customerID)
		if err != nil {
			log.Errorf("Failed to fetch payment history: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to fetch payment history", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment history", history)
	}
}

// MakePayment returns a Fiber handler forwarding a payment request.
// @Summary Make a payment
// @Description Verifies the customer exists and forwards the payment to the payment service.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body dto.MakePaymentRequest true "Payment details"
// @Success 200 {object} common.Response "Payment processed"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Customer not found"
// @Router /api/v1/customer/make-payment [post]
// @Security Bearer
func MakePayment(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.MakePaymentRequest](c)
		if input == nil {
			return err // error response already written
		}
		resp, err := accountSvc.MakePayment(c.Context(), input)
		if err != nil {
			log.Errorf("Failed to make payment: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to make payment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment processed", resp)
	}
}

// Dashboard returns a Fiber handler for the customer dashboard view.
// @Summary Get customer dashboard
// @Description Aggregates customer identity, account number, balance and payment history.
// @Tags customers
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} common.Response "Dashboard"
// @Failure 400 {object} common.ProblemDetails "Invalid customer ID"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Customer or account not found"
// @Router /api/v1/customer/dashboard/{customerId} [get]
// @Security Bearer
func Dashboard(accountSvc *accountsvc.Service, claims *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, err := uuid.Parse(c.Params("customerId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err,
				"Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		log.Infof("Dashboard requested by %s for customer %s", callerSubject(c, claims), customerID)
		resp, err := accountSvc.Dashboard(c.Context(), customerID)
		if err != nil {
			log.Errorf("Failed to build dashboard: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to build dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer dashboard", resp)
	}
}
