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

// GetVendors fetches vendors modified since the last sync (all of
// them when SyncAllVendors is set), maps and validates the batch. Any
// validation failure blocks the watermark advance.
func (bc *Context) GetVendors(ctx context.Context) result.Result[[]canonical.Vendor] {
	since := watermark[canonical.Vendor](bc, bc.Settings.SyncAllVendors)
	if since.IsErr() {
		return result.ErrAs[*time.Time, []canonical.Vendor](since)
	}

	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.Vendor] {
		fetched := bc.API.GetVendors(ctx, companyID, since.Value())
		return result.Bind(fetched, func(dynVendors []models.Vendor) result.Result[[]canonical.Vendor] {
			vendors := make([]canonical.Vendor, 0, len(dynVendors))
			for _, dyn := range dynVendors {
				vendors = append(vendors, mapVendor(dyn))
			}

			if check := validateAll(vendors); check.IsErr() {
				bc.Logger.Error("one or more entities failed validation " + check.Error())
				return result.Err[[]canonical.Vendor](check.Error())
			}

			_ = syncstate.SetSyncTime[canonical.Vendor](bc.SyncTimes)
			return result.Ok(vendors)
		})
	})
}
