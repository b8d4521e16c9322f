package business

import (
	"context"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

// GetMaterialReceipts expands each purchase receipt into one material
// receipt per line. Map-and-return, like purchase orders.
func (bc *Context) GetMaterialReceipts(ctx context.Context) result.Result[[]canonical.MaterialReceipt] {
	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.MaterialReceipt] {
		fetched := bc.API.GetPurchaseReceipts(ctx, companyID, true)
		return result.Map(fetched, func(dynReceipts []models.PurchaseReceipt) []canonical.MaterialReceipt {
			var receipts []canonical.MaterialReceipt
			for _, dyn := range dynReceipts {
				receipts = append(receipts, mapPurchaseReceipt(dyn)...)
			}
			return receipts
		})
	})
}
