// Package transfer exposes the inter-bank transfer endpoint.
package transfer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/pkg/dto"
	"github.com/kobopay/accountsvc/pkg/middleware"
	transfersvc "github.com/kobopay/accountsvc/pkg/service/transfer"
	"github.com/kobopay/accountsvc/webapi/common"
)

// Routes registers the transfer endpoint.
//
// Routes:
//   - POST /api/v1/customer/bank-transfer : Initiate an inter-bank transfer.
func Routes(app *fiber.App, transferSvc *transfersvc.Service, cfg *config.App) {
	app.Post("/api/v1/customer/bank-transfer",
		middleware.JwtProtected(cfg.Auth.Jwt), BankTransfer(transferSvc))
}

// BankTransfer returns a Fiber handler that runs the transfer orchestration.
// The gateway's result is returned verbatim, including business declines; only
// abort paths produce problem responses.
// @Summary Initiate an inter-bank transfer
// @Description Validates the request, checks funds, submits the transfer to the remote bank service and debits the source account iff the gateway confirms success.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.BankTransferRequest true "Transfer details"
// @Success 200 {object} common.Response "Transfer processed"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Customer or account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 502 {object} common.ProblemDetails "Transfer gateway unavailable"
// @Router /api/v1/customer/bank-transfer [post]
// @Security Bearer
func BankTransfer(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.BankTransferRequest](c)
		if input == nil {
			return err // error response already written
		}

		result, err := transferSvc.Transfer(c.Context(), input)
		if err != nil {
			log.Errorf("Bank transfer failed: %v", err)
			return common.ProblemDetailsJSON(c, "Bank transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Bank transfer processed", result)
	}
}
