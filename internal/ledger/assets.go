package ledger

import (
	"fmt"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func (l *Ledger) Assets() []models.Asset {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Asset(nil), l.assets...)
}

func (l *Ledger) GetAsset(id string) (models.Asset, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, a := range l.assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

func (l *Ledger) CreateAsset(req models.AssetRequest) (models.Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	asset := models.Asset{
		ID:              l.newID("AST"),
		Name:            req.Name,
		Category:        req.Category,
		Model:           req.Model,
		SerialNumber:    req.SerialNumber,
		InstallDate:     req.InstallDate,
		Location:        req.Location,
		Status:          req.Status,
		Uptime:          req.Uptime,
		LastMaintenance: req.LastMaintenance,
		NextMaintenance: req.NextMaintenance,
		Image:           req.Image,
	}
	l.assets = append(l.assets, asset)

	err := l.commit(keyAssets, l.assets,
		fmt.Sprintf("Created asset %s (%s)", asset.ID, asset.Name),
		"Asset created successfully", metadata.SeveritySuccess)
	return asset, err
}

func (l *Ledger) UpdateAsset(id string, update models.AssetUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.assets {
		if l.assets[i].ID != id {
			continue
		}

		prevStatus := l.assets[i].Status
		update.Apply(&l.assets[i])

		action := fmt.Sprintf("Updated asset %s (%s)", id, l.assets[i].Name)
		if update.Status != nil && *update.Status != prevStatus {
			action = fmt.Sprintf("%s status changed to %s", id, *update.Status)
		}

		err := l.commit(keyAssets, l.assets, action, "Asset updated", metadata.SeverityInfo)
		return true, err
	}

	// unknown id: silent no-op
	return false, nil
}

// DeleteAsset removes the asset only. Work orders and schedules that
// reference it keep their stale denormalized name; there is no cascade.
func (l *Ledger) DeleteAsset(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, a := range l.assets {
		if a.ID != id {
			continue
		}

		l.assets = append(l.assets[:i], l.assets[i+1:]...)
		err := l.commit(keyAssets, l.assets,
			fmt.Sprintf("Deleted asset %s (%s)", id, a.Name),
			"Asset deleted", metadata.SeverityError)
		return true, err
	}

	return false, nil
}
