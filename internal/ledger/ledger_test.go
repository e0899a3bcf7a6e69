package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/storage"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "cmms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	led, err := New(newTestStore(t), Config{NotificationTTL: 40 * time.Millisecond}, zap.NewNop())
	require.NoError(t, err)

	return led
}

func strPtr(s string) *string { return &s }

func TestFirstLoadSeedsDefaults(t *testing.T) {
	led := newTestLedger(t)

	assert.Len(t, led.Assets(), 6)
	assert.Len(t, led.WorkOrders(), 7)
	assert.Len(t, led.Parts(), 6)
	assert.Len(t, led.Technicians(), 4)
	assert.Len(t, led.Schedules(), 2)
	assert.Len(t, led.Activities(), 4)
	assert.Empty(t, led.Notifications(), "seeding must not notify")
}

func TestCreateAssetLogsAndNotifies(t *testing.T) {
	led := newTestLedger(t)

	asset, err := led.CreateAsset(models.AssetRequest{
		Name:     "Laser Cutter",
		Category: "Manufacturing",
		Status:   metadata.AssetRunning,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, asset.ID)
	assert.Len(t, led.Assets(), 7)

	activities := led.Activities()
	require.NotEmpty(t, activities)
	assert.Contains(t, activities[0].Action, asset.ID)
	assert.Equal(t, metadata.SeveritySuccess, activities[0].Type)

	notifications := led.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Asset created successfully", notifications[0].Message)
}

func TestWorkOrderCreationPrepends(t *testing.T) {
	led := newTestLedger(t)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:    "Inspect gearbox",
		Priority: metadata.PriorityLow,
		Status:   metadata.WorkOrderRequested,
	})
	require.NoError(t, err)

	orders := led.WorkOrders()
	require.NotEmpty(t, orders)
	assert.Equal(t, order.ID, orders[0].ID, "newest work order must come first")
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	led := newTestLedger(t)
	before := led.Assets()

	ok, err := led.UpdateAsset("AST-999", models.AssetUpdate{Name: strPtr("Ghost")})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, led.Assets())
	assert.Empty(t, led.Notifications())
	assert.Len(t, led.Activities(), 4, "no entry beyond the seed data")
}

func TestDeleteAssetDoesNotCascade(t *testing.T) {
	led := newTestLedger(t)

	ok, err := led.DeleteAsset("AST-002")
	require.NoError(t, err)
	require.True(t, ok)

	// WO-2345 references AST-002; it must survive with its stale
	// denormalized name.
	order, found := led.GetWorkOrder("WO-2345")
	require.True(t, found)
	assert.Equal(t, "AST-002", order.AssetID)
	assert.Equal(t, "Hydraulic Press 50T", order.AssetName)

	schedules := led.Schedules()
	assert.Len(t, schedules, 2, "schedules referencing the asset stay")
}

func TestRenamingAssetLeavesSnapshotStale(t *testing.T) {
	led := newTestLedger(t)

	ok, err := led.UpdateAsset("AST-002", models.AssetUpdate{Name: strPtr("Hydraulic Press 80T")})
	require.NoError(t, err)
	require.True(t, ok)

	order, found := led.GetWorkOrder("WO-2345")
	require.True(t, found)
	assert.Equal(t, "Hydraulic Press 50T", order.AssetName,
		"snapshot is written at work-order write time, not kept in sync")
}

func TestGenerateWorkOrderFromSchedule(t *testing.T) {
	led := newTestLedger(t)
	before := len(led.WorkOrders())
	today := time.Now().Format("2006-01-02")

	order, found, err := led.GenerateWorkOrderFromSchedule("PM-001")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "PM: Weekly Belt Inspection", order.Title)
	assert.Equal(t, pmAutoDescription, order.Description)
	assert.Equal(t, "AST-003", order.AssetID)
	assert.Equal(t, "Conveyor Belt System", order.AssetName)
	assert.Equal(t, "John Doe", order.AssignedTo)
	assert.Equal(t, metadata.PriorityMedium, order.Priority)
	assert.Equal(t, metadata.WorkOrderPending, order.Status)
	assert.Equal(t, metadata.TypePreventive, order.Type)
	assert.Equal(t, today, order.CreatedAt)
	assert.Equal(t, time.Now().AddDate(0, 0, 3).Format("2006-01-02"), order.DueDate)

	assert.Len(t, led.WorkOrders(), before+1, "exactly one work order created")

	var schedule models.PMSchedule
	for _, s := range led.Schedules() {
		if s.ID == "PM-001" {
			schedule = s
		}
	}
	assert.Equal(t, today, schedule.LastRunDate)
	assert.Equal(t, time.Now().AddDate(0, 0, 7).Format("2006-01-02"), schedule.NextDueDate)
}

func TestGenerateFromUnknownScheduleIsNoOp(t *testing.T) {
	led := newTestLedger(t)
	before := len(led.WorkOrders())

	_, found, err := led.GenerateWorkOrderFromSchedule("PM-999")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, led.WorkOrders(), before)
}

func completionUpdate() models.WorkOrderUpdate {
	completed := metadata.WorkOrderCompleted
	return models.WorkOrderUpdate{Status: &completed}
}

func TestCompletionDeductsInventoryOnce(t *testing.T) {
	led := newTestLedger(t)

	part, err := led.CreatePart(models.PartRequest{Name: "Widget", SKU: "WDG-01", Quantity: 5})
	require.NoError(t, err)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:     "Swap widget",
		Status:    metadata.WorkOrderInProgress,
		Priority:  metadata.PriorityMedium,
		PartsUsed: "Widget x2",
	})
	require.NoError(t, err)

	ok, err := led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)
	require.True(t, ok)

	got, _ := led.GetPart(part.ID)
	assert.Equal(t, 3, got.Quantity)

	// re-saving an already-Completed order must not deduct again
	ok, err = led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)
	require.True(t, ok)

	got, _ = led.GetPart(part.ID)
	assert.Equal(t, 3, got.Quantity)
}

func TestCompletionClampsQuantityAtZero(t *testing.T) {
	led := newTestLedger(t)

	part, err := led.CreatePart(models.PartRequest{Name: "Widget", SKU: "WDG-01", Quantity: 1})
	require.NoError(t, err)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:     "Heavy repair",
		Status:    metadata.WorkOrderPending,
		Priority:  metadata.PriorityHigh,
		PartsUsed: "Widget x5",
	})
	require.NoError(t, err)

	_, err = led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)

	got, _ := led.GetPart(part.ID)
	assert.Equal(t, 0, got.Quantity, "deduction floors at zero, never negative")
}

func TestCompletionAccumulatesRepeatedNames(t *testing.T) {
	led := newTestLedger(t)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:     "Fuse cascade",
		Status:    metadata.WorkOrderInProgress,
		Priority:  metadata.PriorityMedium,
		PartsUsed: "Fuse 10A x1, Fuse 10A x2",
	})
	require.NoError(t, err)

	_, err = led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)

	var fuse models.Part
	for _, p := range led.Parts() {
		if p.Name == "Fuse 10A" {
			fuse = p
		}
	}
	assert.Equal(t, 1, fuse.Quantity, "4 on hand, 1+2 consumed")
}

func TestCompletionSkipsMalformedAndUnknownTokens(t *testing.T) {
	led := newTestLedger(t)
	before := led.Parts()

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:     "Mystery fix",
		Status:    metadata.WorkOrderInProgress,
		Priority:  metadata.PriorityLow,
		PartsUsed: "Unobtainium x2, garbage token, V-Belt A45 x1",
	})
	require.NoError(t, err)

	_, err = led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)

	for _, p := range led.Parts() {
		switch p.Name {
		case "V-Belt A45":
			assert.Equal(t, 14, p.Quantity)
		default:
			for _, prev := range before {
				if prev.ID == p.ID {
					assert.Equal(t, prev.Quantity, p.Quantity, "unrelated parts untouched")
				}
			}
		}
	}
}

func TestCompletionUsesPartsFromSameUpdate(t *testing.T) {
	led := newTestLedger(t)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:    "Sensor swap",
		Status:   metadata.WorkOrderInProgress,
		Priority: metadata.PriorityMedium,
	})
	require.NoError(t, err)

	completed := metadata.WorkOrderCompleted
	_, err = led.UpdateWorkOrder(order.ID, models.WorkOrderUpdate{
		Status:    &completed,
		PartsUsed: strPtr("Safety Sensor x2"),
	})
	require.NoError(t, err)

	var sensor models.Part
	for _, p := range led.Parts() {
		if p.Name == "Safety Sensor" {
			sensor = p
		}
	}
	assert.Equal(t, 10, sensor.Quantity)
}

func TestLeavingCompletedDoesNotRestock(t *testing.T) {
	led := newTestLedger(t)

	order, err := led.CreateWorkOrder(models.WorkOrderRequest{
		Title:     "Belt change",
		Status:    metadata.WorkOrderInProgress,
		Priority:  metadata.PriorityMedium,
		PartsUsed: "V-Belt A45 x1",
	})
	require.NoError(t, err)

	_, err = led.UpdateWorkOrder(order.ID, completionUpdate())
	require.NoError(t, err)

	reopened := metadata.WorkOrderInProgress
	_, err = led.UpdateWorkOrder(order.ID, models.WorkOrderUpdate{Status: &reopened})
	require.NoError(t, err)

	var belt models.Part
	for _, p := range led.Parts() {
		if p.Name == "V-Belt A45" {
			belt = p
		}
	}
	assert.Equal(t, 14, belt.Quantity, "reverting the status never restocks")
}

func TestManualStockAdjustmentNotifies(t *testing.T) {
	led := newTestLedger(t)

	quantity := 2
	ok, err := led.UpdatePart("PRT-004", models.PartUpdate{Quantity: &quantity})
	require.NoError(t, err)
	require.True(t, ok)

	notifications := led.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Inventory updated", notifications[0].Message)

	activities := led.Activities()
	require.NotEmpty(t, activities)
	assert.Contains(t, activities[0].Action, "stock changed 4 -> 2")
}

func TestPersistedStateSurvivesReload(t *testing.T) {
	store := newTestStore(t)

	first, err := New(store, Config{NotificationTTL: 40 * time.Millisecond}, zap.NewNop())
	require.NoError(t, err)

	asset, err := first.CreateAsset(models.AssetRequest{Name: "Grinder", Status: metadata.AssetRunning})
	require.NoError(t, err)

	second, err := New(store, Config{NotificationTTL: 40 * time.Millisecond}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first.Assets(), second.Assets())
	assert.Equal(t, first.WorkOrders(), second.WorkOrders())
	assert.Equal(t, first.Parts(), second.Parts())

	_, found := second.GetAsset(asset.ID)
	assert.True(t, found)
	assert.Empty(t, second.Notifications(), "notifications are never persisted")
}

func TestCorruptCollectionFallsBackToDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put("parts", []byte("{not json")))

	led, err := New(store, Config{}, zap.NewNop())
	require.NoError(t, err, "corruption is not surfaced to the caller")
	assert.Len(t, led.Parts(), 6, "compiled-in defaults replace the corrupt collection")
}

func TestResetRestoresDefaults(t *testing.T) {
	led := newTestLedger(t)

	_, err := led.CreateAsset(models.AssetRequest{Name: "Extra", Status: metadata.AssetRunning})
	require.NoError(t, err)
	_, err = led.DeletePart("PRT-001")
	require.NoError(t, err)

	require.NoError(t, led.Reset())

	assert.Len(t, led.Assets(), 6)
	assert.Len(t, led.Parts(), 6)
	assert.Len(t, led.WorkOrders(), 7)
}

func TestNotificationExpiresAfterTTL(t *testing.T) {
	led := newTestLedger(t)

	led.AddNotification("ephemeral", metadata.SeverityInfo)
	require.Len(t, led.Notifications(), 1)

	assert.Eventually(t, func() bool {
		return len(led.Notifications()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRemoveNotificationBeforeExpiry(t *testing.T) {
	led := newTestLedger(t)

	id := led.AddNotification("dismiss me", metadata.SeverityWarning)
	led.RemoveNotification(id)
	assert.Empty(t, led.Notifications())

	// the abandoned timer must not panic or remove anything else
	led.AddNotification("still here", metadata.SeverityInfo)
	assert.Len(t, led.Notifications(), 1)
}

func TestQuantitiesNeverNegative(t *testing.T) {
	led := newTestLedger(t)

	negative := -3
	ok, err := led.UpdatePart("PRT-004", models.PartUpdate{Quantity: &negative})
	require.NoError(t, err)
	require.True(t, ok)

	part, _ := led.GetPart("PRT-004")
	assert.Equal(t, 0, part.Quantity)

	for _, p := range led.Parts() {
		assert.GreaterOrEqual(t, p.Quantity, 0)
	}
}

func TestKPISnapshot(t *testing.T) {
	led := newTestLedger(t)

	kpis := led.KPIs()
	assert.Equal(t, 6, kpis.TotalAssets)
	assert.Equal(t, 3, kpis.ActiveWorkOrders, "2 In Progress + 1 Pending")
	assert.Equal(t, 2, kpis.LowStockItems, "oil at 8 and fuse at 4 under threshold 10")
	assert.InDelta(t, 86.5, kpis.AverageUptime, 0.01)
}

func TestDueSchedules(t *testing.T) {
	led := newTestLedger(t)

	due := led.DueSchedules()
	require.Len(t, due, 1)
	assert.Equal(t, "PM-001", due[0].ID)

	// running the schedule rolls it out of the due window
	_, _, err := led.GenerateWorkOrderFromSchedule("PM-001")
	require.NoError(t, err)
	assert.Empty(t, led.DueSchedules())
}
