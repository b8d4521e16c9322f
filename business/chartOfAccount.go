package business

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"github.com/google/uuid"
)

// GetChartOfAccounts combines G/L accounts and dimension values into
// one enterprise-code batch. The batch is validated as a whole and the
// watermark advances once, only after everything passed.
func (bc *Context) GetChartOfAccounts(ctx context.Context) result.Result[[]canonical.EnterpriseCode] {
	since := watermark[canonical.EnterpriseCode](bc, bc.Settings.SyncAllCodes)
	if since.IsErr() {
		return result.ErrAs[*time.Time, []canonical.EnterpriseCode](since)
	}

	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.EnterpriseCode] {
		var codes []canonical.EnterpriseCode

		accounts := bc.API.GetAccounts(ctx, companyID, since.Value()).
			Tap(func(dynAccounts []models.Account) {
				for _, dyn := range dynAccounts {
					codes = append(codes, mapAccount(dyn))
				}
			})

		dimensions := result.Bind(accounts, func([]models.Account) result.Result[[]models.Dimension] {
			return bc.API.GetDimensions(ctx, companyID, true, since.Value())
		}).Tap(func(dynDimensions []models.Dimension) {
			for _, dyn := range dynDimensions {
				codes = append(codes, mapDimension(dyn)...)
			}
		})

		validated := result.Bind(dimensions, func([]models.Dimension) result.Result[result.Unit] {
			check := validateAll(codes)
			if check.IsErr() {
				bc.Logger.Error("one or more entities failed validation " + check.Error())
			}
			return check
		})

		advanced := result.Bind(validated, func(result.Unit) result.Result[result.Unit] {
			return syncstate.SetSyncTime[canonical.EnterpriseCode](bc.SyncTimes)
		})

		return result.Map(advanced, func(result.Unit) []canonical.EnterpriseCode {
			return codes
		})
	})
}
