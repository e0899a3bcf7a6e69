package ledger

import (
	"time"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// Compiled-in seed dataset, written on first load and after a reset.

func daysFrom(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(dateLayout)
}

func defaultAssets(now time.Time) []models.Asset {
	return []models.Asset{
		{
			ID: "AST-001", Name: "CNC Milling Machine X1", Category: "Manufacturing",
			Model: "Haas VF-2", SerialNumber: "HS-9982-X1", InstallDate: "2021-05-12",
			Location: "Floor 1, Zone A", Status: metadata.AssetRunning, Uptime: 98.5,
			LastMaintenance: daysFrom(now, -30), NextMaintenance: daysFrom(now, 30),
		},
		{
			ID: "AST-002", Name: "Hydraulic Press 50T", Category: "Forming",
			Model: "Dake 50 Ton", SerialNumber: "DK-50T-2022", InstallDate: "2022-01-20",
			Location: "Floor 1, Zone B", Status: metadata.AssetDowntime, Uptime: 45.2,
			LastMaintenance: daysFrom(now, -40), NextMaintenance: daysFrom(now, -10),
		},
		{
			ID: "AST-003", Name: "Conveyor Belt System", Category: "Logistics",
			Model: "Siemens Flow", SerialNumber: "SF-CON-003", InstallDate: "2020-11-15",
			Location: "Floor 2, Zone C", Status: metadata.AssetMaintenance, Uptime: 88.0,
			LastMaintenance: daysFrom(now, -5), NextMaintenance: daysFrom(now, 25),
		},
		{
			ID: "AST-004", Name: "Industrial Robot Arm", Category: "Assembly",
			Model: "Kuka KR 16", SerialNumber: "KK-ROBO-16", InstallDate: "2023-03-10",
			Location: "Floor 1, Zone A", Status: metadata.AssetRunning, Uptime: 99.9,
			LastMaintenance: daysFrom(now, -60), NextMaintenance: daysFrom(now, 60),
		},
		{
			ID: "AST-005", Name: "Injection Molder", Category: "Manufacturing",
			Model: "Arburg 370", SerialNumber: "ARB-370-V2", InstallDate: "2019-08-05",
			Location: "Floor 1, Zone B", Status: metadata.AssetRunning, Uptime: 92.4,
			LastMaintenance: daysFrom(now, -50), NextMaintenance: daysFrom(now, 10),
		},
		{
			ID: "AST-006", Name: "Packaging Unit Z1", Category: "Logistics",
			Model: "PackMaster 3000", SerialNumber: "PM-3000-Z1", InstallDate: "2021-06-01",
			Location: "Floor 2, Zone D", Status: metadata.AssetOffline, Uptime: 95.0,
			LastMaintenance: daysFrom(now, -100), NextMaintenance: daysFrom(now, 80),
		},
	}
}

func defaultTechnicians() []models.Technician {
	return []models.Technician{
		{ID: "TCH-001", Name: "Mike Ross", Role: "Senior Mechanic", Status: metadata.TechnicianActive, Email: "mike.ross@optimaint.com"},
		{ID: "TCH-002", Name: "Sarah Connor", Role: "Electrical Specialist", Status: metadata.TechnicianActive, Email: "sarah.connor@optimaint.com"},
		{ID: "TCH-003", Name: "John Doe", Role: "General Maintenance", Status: metadata.TechnicianActive, Email: "john.doe@optimaint.com"},
		{ID: "TCH-004", Name: "Jane Smith", Role: "Apprentice", Status: metadata.TechnicianInactive, Email: "jane.smith@optimaint.com"},
	}
}

func defaultWorkOrders(now time.Time) []models.WorkOrder {
	return []models.WorkOrder{
		{
			ID: "WO-2345", Title: "Replace Hydraulic Seal",
			Description: "Leaking oil from main cylinder",
			AssetID:     "AST-002", AssetName: "Hydraulic Press 50T",
			AssignedTo: "Mike Ross", Priority: metadata.PriorityHigh,
			Status: metadata.WorkOrderInProgress,
			DueDate: daysFrom(now, 2), CreatedAt: daysFrom(now, -2),
			Type: metadata.TypeReactive, PartsUsed: "Hydraulic Oil (5L) x1",
		},
		{
			ID: "WO-2346", Title: "Quarterly Sensor Calibration",
			Description: "Routine calibration for precision sensors",
			AssetID:     "AST-004", AssetName: "Industrial Robot Arm",
			AssignedTo: "Sarah Connor", Priority: metadata.PriorityMedium,
			Status: metadata.WorkOrderPending,
			DueDate: daysFrom(now, 5), CreatedAt: daysFrom(now, -1),
			Type: metadata.TypePreventive,
		},
		{
			ID: "WO-2347", Title: "Emergency: Motor Overheat",
			Description: "Motor temp > 90C, thermal cutoff activated",
			AssetID:     "AST-003", AssetName: "Conveyor Belt System",
			AssignedTo: "John Doe", Priority: metadata.PriorityCritical,
			Status: metadata.WorkOrderInProgress,
			DueDate: daysFrom(now, 0), CreatedAt: daysFrom(now, 0),
			Type: metadata.TypeReactive, PartsUsed: "Fuse 10A x2",
		},
		{
			ID: "WO-2348", Title: "Lubrication Check",
			AssetID: "AST-001", AssetName: "CNC Milling Machine X1",
			AssignedTo: "Jane Smith", Priority: metadata.PriorityLow,
			Status: metadata.WorkOrderCompleted,
			DueDate: daysFrom(now, -5), CreatedAt: daysFrom(now, -7),
			Type: metadata.TypePreventive, PartsUsed: "Hydraulic Oil (5L) x1",
		},
		{
			ID: "WO-2350", Title: "Strange Noise during operation",
			Description: "Operator reported grinding noise",
			AssetID:     "AST-001", AssetName: "CNC Milling Machine X1",
			AssignedTo: "", Priority: metadata.PriorityMedium,
			Status: metadata.WorkOrderRequested,
			DueDate: daysFrom(now, 3), CreatedAt: daysFrom(now, 0),
			Type: metadata.TypeReactive,
		},
		{
			ID: "WO-2201", Title: "Belt Replacement",
			AssetID: "AST-003", AssetName: "Conveyor Belt System",
			AssignedTo: "Mike Ross", Priority: metadata.PriorityMedium,
			Status: metadata.WorkOrderCompleted,
			DueDate: daysFrom(now, -45), CreatedAt: daysFrom(now, -50),
			Type: metadata.TypeReactive, PartsUsed: "V-Belt A45 x1",
		},
		{
			ID: "WO-2202", Title: "Safety Guard Repair",
			AssetID: "AST-002", AssetName: "Hydraulic Press 50T",
			AssignedTo: "John Doe", Priority: metadata.PriorityHigh,
			Status: metadata.WorkOrderCompleted,
			DueDate: daysFrom(now, -70), CreatedAt: daysFrom(now, -72),
			Type: metadata.TypeReactive,
		},
	}
}

func defaultSchedules(now time.Time) []models.PMSchedule {
	return []models.PMSchedule{
		{
			ID: "PM-001", TaskName: "Weekly Belt Inspection",
			AssetID: "AST-003", AssetName: "Conveyor Belt System",
			FrequencyDays: 7, LastRunDate: daysFrom(now, -7),
			NextDueDate: daysFrom(now, 0), AssignedTo: "John Doe",
		},
		{
			ID: "PM-002", TaskName: "Monthly Hydraulic Filter Change",
			AssetID: "AST-002", AssetName: "Hydraulic Press 50T",
			FrequencyDays: 30, LastRunDate: daysFrom(now, -25),
			NextDueDate: daysFrom(now, 5), AssignedTo: "Mike Ross",
		},
	}
}

func defaultParts() []models.Part {
	return []models.Part{
		{ID: "PRT-001", Name: "Hydraulic Oil (5L)", SKU: "OIL-HYD-05", Quantity: 8, UnitPrice: 45.00, Category: "Fluids"},
		{ID: "PRT-002", Name: "Ball Bearing 50mm", SKU: "BRG-50-MM", Quantity: 24, UnitPrice: 12.50, Category: "Hardware"},
		{ID: "PRT-003", Name: "V-Belt A45", SKU: "VBLT-A45", Quantity: 15, UnitPrice: 8.99, Category: "Belts"},
		{ID: "PRT-004", Name: "Fuse 10A", SKU: "FUSE-10A", Quantity: 4, UnitPrice: 1.50, Category: "Electrical"},
		{ID: "PRT-005", Name: "Safety Sensor", SKU: "SENS-SAF-01", Quantity: 12, UnitPrice: 120.00, Category: "Sensors"},
		{ID: "PRT-006", Name: "M8 Bolts (Box)", SKU: "BLT-M8-100", Quantity: 50, UnitPrice: 5.00, Category: "Hardware"},
	}
}

func defaultActivities(now time.Time) []models.ActivityLog {
	stamp := func(minsAgo int) string {
		return now.Add(-time.Duration(minsAgo) * time.Minute).Format(time.RFC3339)
	}
	return []models.ActivityLog{
		{ID: "ACT-001", Action: "Created WO-2350", User: "Admin", Timestamp: stamp(10), Type: metadata.SeverityInfo},
		{ID: "ACT-002", Action: "AST-002 status changed to Downtime", User: "System", Timestamp: stamp(45), Type: metadata.SeverityError},
		{ID: "ACT-003", Action: "Completed WO-2348", User: "Jane Smith", Timestamp: stamp(120), Type: metadata.SeveritySuccess},
		{ID: "ACT-004", Action: "Low Stock Alert: Hydraulic Oil", User: "Inventory Bot", Timestamp: stamp(240), Type: metadata.SeverityWarning},
	}
}
