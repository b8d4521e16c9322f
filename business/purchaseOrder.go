package business

import (
	"context"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

// GetPurchaseOrders maps orders with their lines expanded. No
// watermark and no validation for this entity type.
func (bc *Context) GetPurchaseOrders(ctx context.Context) result.Result[[]canonical.PurchaseOrder] {
	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.PurchaseOrder] {
		fetched := bc.API.GetPurchaseOrders(ctx, companyID, true)
		return result.Map(fetched, func(dynOrders []models.PurchaseOrder) []canonical.PurchaseOrder {
			orders := make([]canonical.PurchaseOrder, 0, len(dynOrders))
			for _, dyn := range dynOrders {
				orders = append(orders, mapPurchaseOrder(dyn))
			}
			return orders
		})
	})
}
